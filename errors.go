package compact

import "errors"

// ErrInvalidValue indicates a numeric input that cannot be represented,
// such as NaN or an infinity.
var ErrInvalidValue = errors.New("compact: invalid value")

// ErrUnsupported marks operations this library deliberately refuses, so
// callers can tell "not implemented on purpose" apart from genuine failure.
var ErrUnsupported = errors.New("compact: unsupported operation")

// ErrDataIntegrity indicates a malformed locale corpus: missing root data,
// an alias redirect cycle, or a table without an "other" fallback pattern.
// A well-formed corpus never triggers it.
var ErrDataIntegrity = errors.New("compact: corpus integrity")
