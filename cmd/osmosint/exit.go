package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/overpass"
	"github.com/woozymasta/osmosint/internal/prompt"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInvalid     = 2
	exitTransport   = 3
	exitPersistence = 4
)

type configError struct {
	err error
}

func (e *configError) Error() string {
	return "load configuration: " + e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

// report prints the user-facing message for err and returns the exit code.
// Help goes to out, everything else to errOut.
func report(out, errOut io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var (
		flagsErr       *flags.Error
		parseErr       *geo.ParseError
		rangeErr       *geo.RangeError
		validationErr  *query.ValidationError
		overpassErr    *overpass.Error
		persistenceErr *output.PersistenceError
		cfgErr         *configError
	)

	switch {
	case errors.As(err, &flagsErr):
		switch flagsErr.Type {
		case flags.ErrHelp:
			fmt.Fprintln(out, flagsErr.Message)
			return exitOK
		case flags.ErrCommandRequired:
			fmt.Fprintln(out, "Welcome to Osmosint!")
			fmt.Fprintln(out, "To get an overview of what you can do, enter 'osmosint -h'")
			fmt.Fprintln(out, "To try a command out, enter 'osmosint locate'")
			return exitOK
		}
		fmt.Fprintln(errOut, flagsErr.Message)
		return exitFailure

	case errors.Is(err, prompt.ErrExit), errors.Is(err, output.ErrAborted):
		fmt.Fprintln(out, "Exiting the program...")
		return exitOK

	case errors.As(err, &cfgErr):
		log.Error().Err(err).Msg("Failed to load configuration")
		fmt.Fprintf(errOut, "Configuration error: %v\n", cfgErr.err)
		return exitFailure

	case errors.As(err, &parseErr), errors.As(err, &rangeErr):
		log.Debug().Err(err).Msg("Invalid coordinates")
		fmt.Fprintf(errOut, "Invalid coordinates: %v\n", err)
		fmt.Fprintln(errOut, `Example of valid format: 48°50'41.5"N, 2°19'48.7"E [OR] 48.855208, 2.345775`)
		return exitInvalid

	case errors.As(err, &validationErr):
		log.Debug().Err(err).Msg("Invalid query")
		fmt.Fprintf(errOut, "Invalid query: %v\n", err)
		return exitInvalid

	case errors.As(err, &overpassErr):
		log.Error().Err(err).Msg("Overpass request failed")
		fmt.Fprintln(errOut, overpassErr.Message())
		return exitTransport

	case errors.As(err, &persistenceErr):
		log.Error().Err(err).Msg("Failed to write results")
		fmt.Fprintln(errOut, persistenceErr.Message())
		return exitPersistence
	}

	log.Error().Err(err).Msg("Unexpected error")
	fmt.Fprintln(errOut, "An unexpected error occurred.")
	return exitFailure
}
