package deliverylog

import "errors"

// ErrProjectRequired is returned when a non-administrator asks for the
// unfiltered feed. Attempts carry recipient phone numbers, so unscoped
// reads are reserved for administrators.
var ErrProjectRequired = errors.New("non-administrator callers must filter by project")
