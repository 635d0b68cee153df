package repo

import "errors"

// Sentinel errors shared by all stores; handlers map them to HTTP
// statuses.
var (
	ErrNotFound       = errors.New("record not found")
	ErrConflict       = errors.New("record already exists")
	ErrSelfDelete     = errors.New("cannot delete own account")
	ErrDeviceNotFound = errors.New("device not found")
)

// DefaultLimit caps list pages when the caller does not ask otherwise.
const DefaultLimit = 100

func pageOrDefault(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return skip, limit
}
