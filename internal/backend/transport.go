package backend

import (
	"log"
	"net/http"
)

// LoggingRoundTripper logs the request line and response status of every call
type LoggingRoundTripper struct {
	rt http.RoundTripper
}

// NewLoggingRoundTripper wraps rt, falling back to http.DefaultTransport
func NewLoggingRoundTripper(rt http.RoundTripper) *LoggingRoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &LoggingRoundTripper{rt: rt}
}

// RoundTrip implements http.RoundTripper
func (l *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log.Printf("HTTP Request: %s %s", req.Method, req.URL)
	resp, err := l.rt.RoundTrip(req)
	if err != nil {
		log.Printf("HTTP Request failed: %v", err)
		return nil, err
	}
	log.Printf("HTTP Response: %s %s", resp.Status, req.URL)
	return resp, nil
}
