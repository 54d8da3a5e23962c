package metrics

import "net/http"

// instrumentedTransport counts every request by host and outcome before
// delegating to the wrapped RoundTripper.
type instrumentedTransport struct {
	next     http.RoundTripper
	recorder *Recorder
}

// NewInstrumentedTransport wraps a RoundTripper with upstream counters. A
// nil next falls back to http.DefaultTransport.
func NewInstrumentedTransport(next http.RoundTripper, recorder *Recorder) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumentedTransport{next: next, recorder: recorder}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	t.recorder.RecordUpstream(req.URL.Host, err)
	return resp, err
}
