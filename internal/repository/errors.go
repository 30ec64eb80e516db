package repository

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFound reports that no document matched the filter.
	ErrNotFound = errors.New("not found")
	// ErrBadID reports a path segment that is not a valid store identifier.
	ErrBadID = errors.New("malformed identifier")
	// ErrUserExists reports an insert whose email is already taken.
	ErrUserExists = errors.New("user already exists")
)

// ParseID converts a path segment into a store identifier. Identifiers are
// store-assigned and positive; anything else is ErrBadID, which handlers
// map to a 400 instead of letting the conversion fail downstream.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}
