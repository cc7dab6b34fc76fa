package todo

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError under errors.Is.
var ErrNotFound = errors.New("item not found")

// NotFoundError is returned when an operation names an ID that is not in the
// list the operation reads from. The lists are left unchanged.
type NotFoundError struct {
	ID   ItemID
	From State
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %d not found in %s list", e.ID, e.From)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidIDError is returned by ParseItemID for input that is not a
// positive decimal integer.
type InvalidIDError struct {
	Input string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid item id: %q", e.Input)
}
