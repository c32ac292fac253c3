package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"pocketshelf/types"
)

// Source fetches the raw catalog document.
type Source interface {
	// Open returns the document body. Callers must Close it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// String names the source in diagnostics.
	String() string
}

// LoadError reports a failed catalog fetch or decode. It is terminal for the session.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	errNotArray     = errors.New("document is not a JSON array of records")
	errTrailingData = errors.New("unexpected data after the record array")
)

// Load fetches and decodes the catalog once. It does not retry.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	body, err := src.Open(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	defer body.Close()

	records, err := Decode(body)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	return &Catalog{records: records}, nil
}

// Decode reads a JSON array of record objects. Missing fields decode as empty
// strings; null entries and non-string fields are rejected.
func Decode(r io.Reader) ([]types.Record, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if raw == nil {
		return nil, errNotArray
	}
	// The body must hold exactly one value.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	records := make([]types.Record, 0, len(raw))
	for i, item := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
			return nil, fmt.Errorf("entry %d: %w", i, errNotArray)
		}
		var rec types.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// FileSource reads the catalog from a local path.
type FileSource struct {
	Path string
}

func (s FileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

func (s FileSource) String() string { return s.Path }

// HTTPSource fetches the catalog with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func (s HTTPSource) String() string { return s.URL }

// ObjectGetter is the part of the S3 wrapper a catalog source needs.
type ObjectGetter interface {
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// S3Source reads the catalog from an object in a bucket.
type S3Source struct {
	Store  ObjectGetter
	Bucket string
	Key    string
}

func (s S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Store == nil {
		return nil, errors.New("s3 is not configured")
	}
	return s.Store.Get(ctx, s.Bucket, s.Key)
}

func (s S3Source) String() string { return "s3://" + s.Bucket + "/" + s.Key }

// OpenSource picks a Source for location: http(s) URLs, s3://bucket/key, or a file path.
// store may be nil when S3 is not configured.
func OpenSource(location string, store ObjectGetter) (Source, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return HTTPSource{URL: location}, nil
	case strings.HasPrefix(location, "s3://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("parse s3 location: %w", err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("s3 location %q needs a bucket and a key", location)
		}
		return S3Source{Store: store, Bucket: u.Host, Key: key}, nil
	case location == "":
		return nil, errors.New("empty catalog location")
	default:
		return FileSource{Path: location}, nil
	}
}
