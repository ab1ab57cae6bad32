package overpass

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// LoggingTransport wraps next and logs every request sent to the interpreter.
// A nil next uses http.DefaultTransport.
func LoggingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

type loggingTransport struct {
	next http.RoundTripper
}

// RoundTrip logs the status and duration after the response headers arrive.
func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(r)
	if err != nil {
		log.Debug().
			Err(err).
			Str("method", r.Method).
			Str("url", r.URL.Redacted()).
			Dur("duration", time.Since(start)).
			Msg("Request failed")
		return nil, err
	}

	log.Debug().
		Str("method", r.Method).
		Str("url", r.URL.Redacted()).
		Int("status", resp.StatusCode).
		Int64("size", resp.ContentLength).
		Dur("duration", time.Since(start)).
		Msg("Request processed")

	return resp, nil
}
