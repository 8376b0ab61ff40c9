package repos

import "errors"

// ErrStorageUnavailable is returned by write paths when no database handle is
// configured. Read paths degrade to empty results instead.
var ErrStorageUnavailable = errors.New("storage unavailable")
