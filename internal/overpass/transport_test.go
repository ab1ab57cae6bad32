package overpass

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestLoggingTransport(t *testing.T) {
	logs := captureLogs(t)

	srv := httptest.NewServer(xmlResponse(http.StatusOK, bakeries))
	t.Cleanup(srv.Close)

	c := NewClient(&http.Client{Transport: LoggingTransport(srv.Client().Transport)}, srv.URL)
	res, err := c.Execute(context.Background(), `node["shop"="bakery"];out;`)
	require.NoError(t, err)
	assert.Len(t, res.Nodes, 2)

	assert.Contains(t, logs.String(), `"message":"Request processed"`)
	assert.Contains(t, logs.String(), `"status":200`)
	assert.Contains(t, logs.String(), `"method":"POST"`)
}

func TestLoggingTransportError(t *testing.T) {
	logs := captureLogs(t)
	refused := errors.New("connection refused")

	rt := LoggingTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, refused
	}))

	req, err := http.NewRequest(http.MethodPost, "http://overpass.invalid/api/interpreter", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, refused)
	assert.Contains(t, logs.String(), `"message":"Request failed"`)
}
