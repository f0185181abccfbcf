package plottools

import "errors"

// Sentinel errors for style and convention-check operations.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrUnknownStyle indicates the named style preset does not exist.
	ErrUnknownStyle = errors.New("plottools: unknown style preset")

	// ErrUnknownSeries indicates the named style series does not exist.
	ErrUnknownSeries = errors.New("plottools: unknown style series")

	// ErrUnknownColor indicates the named color is not in the palette.
	ErrUnknownColor = errors.New("plottools: color not in palette")

	// ErrInvalidColor indicates a color string could not be parsed.
	ErrInvalidColor = errors.New("plottools: invalid color")

	// ErrInvalidPalette indicates a palette file is malformed.
	ErrInvalidPalette = errors.New("plottools: invalid palette file")

	// ErrNotDirectory indicates the check target is not a directory.
	ErrNotDirectory = errors.New("plottools: not a directory")

	// ErrViolations indicates a convention check found violations.
	// The CLI maps this to its own exit code.
	ErrViolations = errors.New("plottools: convention violations found")

	// ErrUnsupportedData indicates a data file extension that cannot
	// be inspected.
	ErrUnsupportedData = errors.New("plottools: unsupported data file")

	// ErrBadNPZ indicates an .npz archive or .npy member is malformed.
	ErrBadNPZ = errors.New("plottools: malformed npz file")

	// ErrStorageError indicates a filesystem operation failed.
	ErrStorageError = errors.New("plottools: storage error")
)
