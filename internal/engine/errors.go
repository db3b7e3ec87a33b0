package engine

import (
	"errors"
	"fmt"

	"github.com/chongchonghe/acap/internal/parser"
	"github.com/chongchonghe/acap/internal/quantity"
)

// ErrorKind tags the closed taxonomy of evaluation failures. All of them are
// value-level conditions: the engine never panics on user input.
type ErrorKind string

const (
	KindParse          ErrorKind = "parse"
	KindName           ErrorKind = "name"
	KindAssignment     ErrorKind = "assignment"
	KindDimension      ErrorKind = "dimension"
	KindDomain         ErrorKind = "domain"
	KindUnitConversion ErrorKind = "unit-conversion"
)

// Error is the tagged failure returned by the engine's entry points.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s error: %s", e.Kind, e.Message) }

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// classify maps errors from the parser and the quantity arithmetic onto the
// engine taxonomy. Unknown errors surface as domain errors rather than being
// swallowed.
func classify(err error) *Error {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return errorf(KindParse, "%s", parseErr.Error())
	}
	var dimErr *quantity.DimensionError
	if errors.As(err, &dimErr) {
		return errorf(KindDimension, "%s", dimErr.Message)
	}
	var domErr *quantity.DomainError
	if errors.As(err, &domErr) {
		return errorf(KindDomain, "%s", domErr.Message)
	}
	return errorf(KindDomain, "%s", err.Error())
}
