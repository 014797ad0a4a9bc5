package catalog

import "errors"

// ErrNotFound is returned when a location id does not exist in the catalog.
var ErrNotFound = errors.New("location not found")
