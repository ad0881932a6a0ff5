package restclient

import "errors"

// errEmptyBaseURL is returned by New for a blank base URL.
var errEmptyBaseURL = errors.New("restclient: base URL cannot be empty")

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }
