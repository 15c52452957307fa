package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/crateful/wirecat/debug"
)

// Transport is the collaborator carrying documents to and from the
// remote catalog, keyed by a logical path such as "computers/id/7" or
// "computers".  The core treats transport failures as non-retryable
// and propagates them unchanged.
type Transport interface {
	Fetch(ctx context.Context, logicalPath string) ([]byte, error)
	Submit(ctx context.Context, method, logicalPath string, body []byte) ([]byte, error)
}

// StatusError is a transport failure with a remote status code.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// HTTPTransport speaks the remote catalog's XML resource protocol over
// HTTP with basic auth.  Retry, backoff, and token lifecycle are out of
// scope here; any failure surfaces to the caller as-is.
type HTTPTransport struct {
	base   string
	user   string
	pass   string
	client *http.Client
	log    *zap.Logger
}

type HTTPOption func(*HTTPTransport)

func HTTPClient(hc *http.Client) HTTPOption {
	return func(t *HTTPTransport) { t.client = hc }
}

func HTTPLogger(l *zap.Logger) HTTPOption {
	return func(t *HTTPTransport) { t.log = l }
}

func NewHTTPTransport(baseURL, username, password string, opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		base:   strings.TrimRight(baseURL, "/"),
		user:   username,
		pass:   password,
		client: http.DefaultClient,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Fetch(ctx context.Context, logicalPath string) ([]byte, error) {
	return t.do(ctx, http.MethodGet, logicalPath, nil)
}

func (t *HTTPTransport) Submit(ctx context.Context, method, logicalPath string, body []byte) ([]byte, error) {
	return t.do(ctx, method, logicalPath, body)
}

func (t *HTTPTransport) do(ctx context.Context, method, logicalPath string, body []byte) ([]byte, error) {
	url := t.base + "/" + logicalPath
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(t.user, t.pass)
	req.Header.Set("Accept", "text/xml")
	if body != nil {
		req.Header.Set("Content-Type", "text/xml")
	}
	if debug.HTTP() {
		debug.Logf("http %s %s (%d bytes)\n", method, url, len(body))
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		t.log.Debug("remote error",
			zap.String("method", method),
			zap.String("path", logicalPath),
			zap.Int("status", resp.StatusCode))
		return nil, &StatusError{
			Method: method,
			Path:   logicalPath,
			Code:   resp.StatusCode,
			Body:   snippet(data),
		}
	}
	return data, nil
}

func snippet(d []byte) string {
	const lim = 200
	s := strings.TrimSpace(string(d))
	if len(s) > lim {
		return s[:lim] + "..."
	}
	return s
}
