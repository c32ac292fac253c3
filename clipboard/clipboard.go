// Package clipboard copies converter output, trying the system clipboard first
// and falling back to an OSC 52 escape sequence written to the terminal.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/rs/zerolog"
)

// Writer puts text somewhere the user can paste it from.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteText(text string) error { return f(text) }

// System returns the OS clipboard, or nil when no clipboard utility is available.
func System() Writer {
	if clipboard.Unsupported {
		return nil
	}
	return WriterFunc(clipboard.WriteAll)
}

// Terminal returns a Writer that emits an OSC 52 copy sequence to out.
func Terminal(out io.Writer) Writer {
	return WriterFunc(func(text string) error {
		_, err := osc52.New(text).WriteTo(out)
		return err
	})
}

// Method names the path that succeeded.
type Method string

const (
	MethodNone     Method = ""
	MethodPrimary  Method = "clipboard"
	MethodFallback Method = "terminal"
)

var errUnavailable = errors.New("not available")

// CopyError is returned when both the primary and the fallback path failed.
type CopyError struct {
	Primary  error
	Fallback error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy failed: clipboard: %v; terminal: %v", e.Primary, e.Fallback)
}

func (e *CopyError) Unwrap() []error { return []error{e.Primary, e.Fallback} }

// Copier tries Primary, then Fallback. Either may be nil.
type Copier struct {
	Primary  Writer
	Fallback Writer
	log      zerolog.Logger
}

// NewCopier creates a Copier over the system clipboard with a terminal fallback on out.
func NewCopier(out io.Writer, log zerolog.Logger) *Copier {
	return &Copier{Primary: System(), Fallback: Terminal(out), log: log}
}

// Copy writes text. Empty text is a no-op. A rejected primary write silently
// falls back; only a failure of both paths is returned.
func (c *Copier) Copy(text string) (Method, error) {
	if text == "" {
		return MethodNone, nil
	}

	primaryErr := errUnavailable
	if c.Primary != nil {
		if primaryErr = c.Primary.WriteText(text); primaryErr == nil {
			return MethodPrimary, nil
		}
		c.log.Debug().Err(primaryErr).Msg("clipboard write rejected, using terminal fallback")
	}

	fallbackErr := errUnavailable
	if c.Fallback != nil {
		if fallbackErr = c.Fallback.WriteText(text); fallbackErr == nil {
			return MethodFallback, nil
		}
	}

	err := &CopyError{Primary: primaryErr, Fallback: fallbackErr}
	c.log.Error().Err(err).Msg("copy failed")
	return MethodNone, err
}
