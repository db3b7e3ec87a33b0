package quantity

import "fmt"

// DimensionError reports incompatible dimension vectors for an operation.
type DimensionError struct {
	Message string
}

func (e *DimensionError) Error() string { return e.Message }

func dimensionErrorf(format string, args ...interface{}) error {
	return &DimensionError{Message: fmt.Sprintf(format, args...)}
}

// DomainError reports a value outside the valid input domain of an operation.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErrorf(format string, args ...interface{}) error {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}
