package sorting

import "errors"

// ErrUnknownAlgorithm indicates an algorithm id outside the catalog.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
