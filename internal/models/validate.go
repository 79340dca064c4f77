package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validation happens before any store mutation; a failure must leave
// existing state untouched, so callers validate first and persist second.

func (s Student) Validate() error {
	return wrapValidation("student", validate.Struct(s))
}

func (c Course) Validate() error {
	return wrapValidation("course", validate.Struct(c))
}

func (a Assignment) Validate() error {
	return wrapValidation("assignment", validate.Struct(a))
}

func (s StudySession) Validate() error {
	if err := wrapValidation("study session", validate.Struct(s)); err != nil {
		return err
	}
	if !s.EndTime.After(s.StartTime) {
		return fmt.Errorf("study session: invalid duration (end %v not after start %v)", s.EndTime, s.StartTime)
	}
	return nil
}

func wrapValidation(entity string, err error) error {
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%s: field %s failed %q validation", entity, f.Field(), f.Tag())
	}
	return fmt.Errorf("%s: %w", entity, err)
}
