package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/overpass"
	"github.com/woozymasta/osmosint/internal/prompt"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	testCases := []struct {
		desc   string
		err    error
		code   int
		out    string
		errOut string
	}{
		{desc: "success", err: nil, code: exitOK},
		{
			desc: "help",
			err:  &flags.Error{Type: flags.ErrHelp, Message: "Usage: osmosint"},
			code: exitOK,
			out:  "Usage: osmosint",
		},
		{
			desc:   "usage",
			err:    &flags.Error{Type: flags.ErrUnknownFlag, Message: "unknown flag `x'"},
			code:   exitFailure,
			errOut: "unknown flag",
		},
		{
			desc: "user exit",
			err:  fmt.Errorf("complete spec: %w", prompt.ErrExit),
			code: exitOK,
			out:  "Exiting the program...",
		},
		{
			desc: "aborted",
			err:  output.ErrAborted,
			code: exitOK,
			out:  "Exiting the program...",
		},
		{
			desc:   "coordinates",
			err:    fmt.Errorf("--sw: %w", &geo.ParseError{Input: "x", Reason: "expected \"latitude, longitude\""}),
			code:   exitInvalid,
			errOut: "Invalid coordinates",
		},
		{
			desc:   "validation",
			err:    fmt.Errorf("tag: %w", &query.ValidationError{Field: "tag", Reason: "empty tag"}),
			code:   exitInvalid,
			errOut: "empty tag",
		},
		{
			desc:   "overpass",
			err:    fmt.Errorf("execute locate query: %w", &overpass.Error{Kind: overpass.RateLimited, Status: 429}),
			code:   exitTransport,
			errOut: overpass.RateLimited.Message(),
		},
		{
			desc:   "persistence",
			err:    &output.PersistenceError{Path: "Results.csv", Err: os.ErrPermission},
			code:   exitPersistence,
			errOut: "Permission to write in the Results.csv file was denied",
		},
		{
			desc:   "config",
			err:    &configError{err: errors.New("parse osmosint.yaml: bad")},
			code:   exitFailure,
			errOut: "Configuration error",
		},
		{
			desc:   "unexpected",
			err:    errors.New("boom"),
			code:   exitFailure,
			errOut: "An unexpected error occurred.",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var out, errOut bytes.Buffer

			code := report(&out, &errOut, tC.err)

			assert.Equal(t, tC.code, code)
			assert.Contains(t, out.String(), tC.out)
			assert.Contains(t, errOut.String(), tC.errOut)
		})
	}
}
