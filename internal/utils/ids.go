// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned by ParseID for anything that is not a positive
// base-10 integer that fits in an int64.
var ErrInvalidID = errors.New("id must be a positive integer")

// ParseID converts a path segment into a surrogate id.
//
// Example:
//
//	id, err := utils.ParseID("42")  // 42, nil
//	_, err = utils.ParseID("0")     // ErrInvalidID
//	_, err = utils.ParseID("abc")   // ErrInvalidID
func ParseID(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidID
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidID
	}
	return n, nil
}
