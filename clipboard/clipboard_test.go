package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	err   error
	texts []string
}

func (r *recorder) WriteText(text string) error {
	r.texts = append(r.texts, text)
	return r.err
}

func TestCopyPrimary(t *testing.T) {
	primary, fallback := &recorder{}, &recorder{}
	c := &Copier{Primary: primary, Fallback: fallback, log: zerolog.Nop()}

	m, err := c.Copy("[]")
	require.NoError(t, err)
	assert.Equal(t, MethodPrimary, m)
	assert.Equal(t, []string{"[]"}, primary.texts)
	assert.Empty(t, fallback.texts)
}

func TestCopyFallsBackWhenRejected(t *testing.T) {
	primary, fallback := &recorder{err: errors.New("denied")}, &recorder{}
	c := &Copier{Primary: primary, Fallback: fallback, log: zerolog.Nop()}

	m, err := c.Copy("[]")
	require.NoError(t, err)
	assert.Equal(t, MethodFallback, m)
	assert.Equal(t, []string{"[]"}, fallback.texts)
}

func TestCopyFallsBackWhenUnavailable(t *testing.T) {
	fallback := &recorder{}
	c := &Copier{Fallback: fallback, log: zerolog.Nop()}

	m, err := c.Copy("x")
	require.NoError(t, err)
	assert.Equal(t, MethodFallback, m)
}

func TestCopyBothFail(t *testing.T) {
	denied, broken := errors.New("denied"), errors.New("broken pipe")
	c := &Copier{Primary: &recorder{err: denied}, Fallback: &recorder{err: broken}, log: zerolog.Nop()}

	m, err := c.Copy("x")
	assert.Equal(t, MethodNone, m)

	var copyErr *CopyError
	require.ErrorAs(t, err, &copyErr)
	assert.ErrorIs(t, err, denied)
	assert.ErrorIs(t, err, broken)
}

func TestCopyEmptyIsNoop(t *testing.T) {
	primary := &recorder{}
	c := &Copier{Primary: primary, log: zerolog.Nop()}

	m, err := c.Copy("")
	require.NoError(t, err)
	assert.Equal(t, MethodNone, m)
	assert.Empty(t, primary.texts)
}

func TestTerminalWritesOSC52(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Terminal(&buf).WriteText("hello"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("hello")))
}
