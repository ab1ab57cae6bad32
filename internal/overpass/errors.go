package overpass

import (
	"fmt"
)

// Kind classifies an Overpass failure.
type Kind int

const (
	Transport Kind = iota
	BadRequest
	RateLimited
	Timeout
	ServerRuntimeError
	ServerRuntimeRemark
	Incomplete
	WrongType
	UnknownStatus
	UnknownContentType
	MaxRetries
)

var kindNames = map[Kind]string{
	Transport:           "transport",
	BadRequest:          "bad_request",
	RateLimited:         "rate_limited",
	Timeout:             "timeout",
	ServerRuntimeError:  "runtime_error",
	ServerRuntimeRemark: "runtime_remark",
	Incomplete:          "incomplete",
	WrongType:           "wrong_type",
	UnknownStatus:       "unknown_status",
	UnknownContentType:  "unknown_content_type",
	MaxRetries:          "max_retries",
}

// user-facing message per failure category
var kindMessages = map[Kind]string{
	Transport:           "An error occurred while contacting the Overpass API.",
	BadRequest:          "There was a syntax error in the query. Please check that your input matches the documentation's example, or that it does not contain any special characters or quotes.",
	RateLimited:         "Too many requests have been sent to the Overpass API. Please try again later.",
	Timeout:             "The Overpass API server is too busy to handle the request. Please try again later.",
	ServerRuntimeError:  "A runtime error occurred on the Overpass API server.",
	ServerRuntimeRemark: "A runtime remark was returned by the Overpass API server.",
	Incomplete:          "The data returned by the Overpass API is incomplete.",
	WrongType:           "The data type of an element returned by the Overpass API is incorrect.",
	UnknownStatus:       "The Overpass API returned an unknown HTTP status code.",
	UnknownContentType:  "The Overpass API returned an unknown content type.",
	MaxRetries:          "The maximum number of retries to the Overpass API was reached.",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Message is the text shown to users for this category.
func (k Kind) Message() string {
	return kindMessages[k]
}

// Error is a classified Overpass failure. Status is the HTTP status code
// when one was received.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := "overpass: " + e.Kind.String()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the text shown to users.
func (e *Error) Message() string {
	return e.Kind.Message()
}

// retryable reports whether the server asked us to come back later.
func (e *Error) retryable() bool {
	return e.Kind == RateLimited || (e.Kind == Timeout && e.Status != 0)
}
