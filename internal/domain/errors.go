package domain

import (
	"fmt"
	"strconv"
)

// StoreError reports that a call against the backing store itself failed
// (network, auth, query). Empty results are never a StoreError.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err, leaving nil untouched.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// ValidationError reports a malformed filter or a stored value outside a closed set.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s [%s]: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError is returned by single-entity lookups. List queries return empty slices instead.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Entity, e.ID)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
