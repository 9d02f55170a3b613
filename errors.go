package seamcarver

import "github.com/pkg/errors"

// Errors returned by the seam carver. They are wrapped with call site details,
// so they should be tested with errors.Is.
var (
	// ErrInvalidImage is returned when the carver is created from a nil or empty image.
	ErrInvalidImage = errors.New("invalid image")
	// ErrOutOfRange is returned when a pixel coordinate is outside the current image bounds.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidSeam is returned when a seam cannot be removed from the current image.
	ErrInvalidSeam = errors.New("invalid seam")
)
