package models

import "errors"

// Reason strings reported for record consistency failures.
const (
	ReasonCurrentWithEndDate = "if 'is_current' is true, 'end_date' should be empty"
	ReasonEndBeforeStart     = "'end_date' cannot be earlier than 'start_date'"
	ReasonEndYearBeforeStart = "'end_year' cannot be earlier than 'start_year'"
	ReasonInvalidSlug        = "'slug' may only contain lowercase letters, digits and single hyphens"
)

// ValidationError is a field-level inconsistency the submitter can correct.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AsValidationError unwraps err into a *ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
