package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// StubResponse describes one canned upstream reply.
type StubResponse struct {
	Status int
	Body   string
	Err    error
}

// StubDoer fakes an HTTP client by matching request URLs against registered
// path fragments. Unmatched requests get a 404.
type StubDoer struct {
	mu        sync.Mutex
	responses map[string]StubResponse
	requests  []*http.Request
}

// NewStubDoer builds a StubDoer from fragment -> response pairs.
func NewStubDoer(responses map[string]StubResponse) *StubDoer {
	return &StubDoer{responses: responses}
}

// Do matches the request URL against registered fragments and replies with
// the canned response.
func (d *StubDoer) Do(req *http.Request) (*http.Response, error) {
	d.mu.Lock()
	d.requests = append(d.requests, req)
	d.mu.Unlock()

	url := req.URL.String()
	for fragment, resp := range d.responses {
		if strings.Contains(url, fragment) {
			if resp.Err != nil {
				return nil, resp.Err
			}
			status := resp.Status
			if status == 0 {
				status = http.StatusOK
			}
			return &http.Response{
				StatusCode: status,
				Status:     fmt.Sprintf("%d", status),
				Body:       io.NopCloser(bytes.NewReader([]byte(resp.Body))),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		}
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader("not found")),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// Requests returns every request seen so far.
func (d *StubDoer) Requests() []*http.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*http.Request, len(d.requests))
	copy(out, d.requests)
	return out
}
