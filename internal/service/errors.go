package service

import (
	"context"
	"errors"
	"fmt"

	"ulascansenturk/city-weather/internal/providers"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindUpstream
	KindDataUnavailable
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream_error"
	case KindDataUnavailable:
		return "data_unavailable"
	default:
		return "unexpected_error"
	}
}

// LookupError is the only error type Lookup returns. Kind tells the caller
// what went wrong without inspecting the message.
type LookupError struct {
	Kind ErrorKind
	City string
	Err  error
}

func (e *LookupError) Error() string {
	if e.City == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("Error getting weather for '%s': %v", e.City, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Timeout reports whether an upstream call ran out of time.
func (e *LookupError) Timeout() bool {
	if e.Kind != KindUpstream {
		return false
	}
	var upstreamErr *providers.UpstreamError
	if errors.As(e.Err, &upstreamErr) {
		return upstreamErr.Timeout()
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// AsLookupError extracts a *LookupError from err, if any.
func AsLookupError(err error) (*LookupError, bool) {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr, true
	}
	return nil, false
}

func isUpstream(err error) bool {
	var upstreamErr *providers.UpstreamError
	return errors.As(err, &upstreamErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

func isNotFound(err error) bool {
	return errors.Is(err, providers.ErrLocationNotFound)
}

func isDataUnavailable(err error) bool {
	return errors.Is(err, providers.ErrTemperatureUnavailable)
}
