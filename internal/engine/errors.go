package engine

import "fmt"

// NotFoundError indicates a record referenced by id does not exist.
// This is returned by service lookups and should be shown to the user.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.ID)
}
