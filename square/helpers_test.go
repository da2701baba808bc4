package square

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type fakeSquare struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeSquare) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, resp := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	if resp == "" {
		resp = "{}"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func (f *fakeSquare) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeSquare) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the fake server")
	return f.requests[len(f.requests)-1]
}

// newFakeSquare starts a server answering every call with status and body,
// and a client pointed at its /v2 root with retries disabled.
func newFakeSquare(t *testing.T, status int, body string, opts ...Option) (*Client, *fakeSquare) {
	t.Helper()
	fake := &fakeSquare{status: status, body: body}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL + "/v2"), WithRetry(0, 0, 0)}, opts...)
	return NewClient("test-token", opts...), fake
}
