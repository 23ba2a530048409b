package catalog

import "errors"

var (
	// ErrDatasetUnavailable means the dataset source could not be read.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrDatasetMalformed means the source was read but its content does not
	// describe a valid catalog.
	ErrDatasetMalformed = errors.New("dataset malformed")

	// ErrDuplicateProductID is always reported together with ErrDatasetMalformed.
	ErrDuplicateProductID = errors.New("duplicate product id")

	// ErrNotLoaded is returned before the first successful load.
	ErrNotLoaded = errors.New("catalog not loaded")
)
