package logfactory

import "errors"

// ErrInvalidConfiguration is returned by the factory for a missing or blank
// logger name, before any handler construction or registry mutation occurs.
// Filesystem and sink errors are not translated; they propagate unwrapped.
var ErrInvalidConfiguration = errors.New("invalid logging configuration")
