package repositories

import "errors"

// ErrNotFound is returned by every adapter when a lookup matches nothing.
// Adapters translate their driver-specific miss into this sentinel.
var ErrNotFound = errors.New("record not found")
