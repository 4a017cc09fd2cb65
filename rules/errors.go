package rules

import "errors"

var (
	// ErrInvalidRulePack is returned when a rule pack file cannot be
	// parsed or fails validation.
	ErrInvalidRulePack = errors.New("invalid rule pack")

	// ErrInvalidVector is returned when a query vector is empty or has
	// a dimension that does not match the index.
	ErrInvalidVector = errors.New("invalid vector")
)
