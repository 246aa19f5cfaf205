package storage

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RecordError reports a record that breaks its field contract (missing id,
// malformed date, negative hours and so on).
type RecordError struct {
	Kind  string
	ID    string
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	id := e.ID
	if id == "" {
		id = "<no id>"
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %s: field %s: %v", e.Kind, id, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %s: %v", e.Kind, id, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// CheckRecord validates rec against its struct tags.
func CheckRecord(kind, id string, rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	rerr := &RecordError{Kind: kind, ID: id, Err: err}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		rerr.Field = verrs[0].Field()
		rerr.Err = fmt.Errorf("failed %q check", verrs[0].Tag())
	}
	return rerr
}

// ValidateStruct runs the shared validator over an input struct.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
