package wave

import (
	"errors"
	"fmt"
)

// ErrDomain indicates a parameter outside the domain of the wave formulas.
var ErrDomain = errors.New("wave: parameter out of domain")

// DomainError reports which parameter was rejected and its value.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("wave: %s must be positive, got %g", e.Field, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

func positive(field string, v float64) error {
	if v > 0 {
		return nil
	}
	return &DomainError{Field: field, Value: v}
}
