// Package overpass executes Overpass QL queries over HTTP and decodes the
// OSM XML response.
package overpass

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the public Overpass API interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// Client sends queries to an Overpass interpreter endpoint.
type Client struct {
	HTTP       *http.Client
	Endpoint   string
	UserAgent  string
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient returns a client for endpoint using h for requests.
func NewClient(h *http.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{HTTP: h, Endpoint: endpoint}
}

type remark struct {
	Remark string `xml:"remark"`
}

// Execute runs query and returns the decoded response. Rate limiting and
// gateway timeouts are retried up to MaxRetries times.
func (c *Client) Execute(ctx context.Context, query string) (*osm.OSM, error) {
	var lastErr *Error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Warn().
				Int("attempt", attempt).
				Str("reason", lastErr.Kind.String()).
				Dur("delay", c.RetryDelay).
				Msg("Retrying Overpass query")

			select {
			case <-ctx.Done():
				return nil, classifyTransport(ctx.Err())
			case <-time.After(c.RetryDelay):
			}
		}

		result, err := c.execute(ctx, query)
		if err == nil {
			return result, nil
		}
		if !err.retryable() {
			return nil, err
		}
		lastErr = err
	}

	if c.MaxRetries > 0 {
		return nil, &Error{Kind: MaxRetries, Status: lastErr.Status, Err: lastErr}
	}
	return nil, lastErr
}

func (c *Client) execute(ctx context.Context, query string) (*osm.OSM, *Error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{Kind: Transport, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)

	log.Debug().
		Str("endpoint", c.Endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Overpass response received")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, &Error{Kind: BadRequest, Status: resp.StatusCode, Detail: errorDetail(body)}
	case http.StatusTooManyRequests:
		return nil, &Error{Kind: RateLimited, Status: resp.StatusCode}
	case http.StatusGatewayTimeout:
		return nil, &Error{Kind: Timeout, Status: resp.StatusCode}
	default:
		return nil, &Error{Kind: UnknownStatus, Status: resp.StatusCode}
	}

	if readErr != nil {
		return nil, &Error{Kind: Incomplete, Status: resp.StatusCode, Err: readErr}
	}

	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || !isXML(mediaType) {
		return nil, &Error{Kind: UnknownContentType, Status: resp.StatusCode, Detail: contentType}
	}

	return decode(body)
}

func (c *Client) client() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func isXML(mediaType string) bool {
	switch mediaType {
	case "application/osm3s+xml", "application/xml", "text/xml":
		return true
	}
	return false
}

// decode parses an OSM XML document and surfaces server-side remarks.
func decode(body []byte) (*osm.OSM, *Error) {
	var result osm.OSM
	if err := xml.Unmarshal(body, &result); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || isTruncated(err) {
			return nil, &Error{Kind: Incomplete, Status: http.StatusOK, Err: err}
		}
		return nil, &Error{Kind: WrongType, Status: http.StatusOK, Err: err}
	}

	var r remark
	if err := xml.Unmarshal(body, &r); err == nil {
		text := strings.TrimSpace(r.Remark)
		switch {
		case strings.HasPrefix(text, "runtime error:"):
			return nil, &Error{Kind: ServerRuntimeError, Status: http.StatusOK, Detail: text}
		case strings.HasPrefix(text, "runtime remark:"):
			return nil, &Error{Kind: ServerRuntimeRemark, Status: http.StatusOK, Detail: text}
		}
	}

	return &result, nil
}

func isTruncated(err error) bool {
	var syntaxErr *xml.SyntaxError
	return errors.As(err, &syntaxErr) && strings.Contains(syntaxErr.Msg, "unexpected EOF")
}

func classifyTransport(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: Timeout, Err: err}
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: Timeout, Err: err}
	}

	return &Error{Kind: Transport, Err: err}
}

// errorDetail extracts the first error line from an Overpass HTML error page.
func errorDetail(body []byte) string {
	for _, line := range bytes.Split(body, []byte("\n")) {
		s := strings.TrimSpace(string(line))
		if i := strings.Index(s, "Error</strong>:"); i >= 0 {
			s = strings.TrimSpace(s[i+len("Error</strong>:"):])
			return strings.TrimSuffix(s, "</p>")
		}
	}
	return ""
}
