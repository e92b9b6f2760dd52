package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// Error kinds re-exported from internal/types.
var (
	ErrInvalidMagic    = types.ErrInvalidMagic
	ErrTruncatedInput  = types.ErrTruncatedInput
	ErrInvalidEncoding = types.ErrInvalidEncoding
	ErrOversizedFrame  = types.ErrOversizedFrame
)

// DecodeError is an alias to types.DecodeError.
// Re-exporting from internal/types to maintain public API.
type DecodeError = types.DecodeError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is an alias to types.Warning.
type Warning = types.Warning
