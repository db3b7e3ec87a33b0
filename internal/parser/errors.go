package parser

import "fmt"

// ParseError reports malformed expression text along with the offending
// fragment so callers can echo it back to the user.
type ParseError struct {
	Fragment string
	Message  string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return e.Message
	}
	return fmt.Sprintf("%s near %q", e.Message, e.Fragment)
}

func parseErrorf(fragment, format string, args ...interface{}) error {
	return &ParseError{Fragment: fragment, Message: fmt.Sprintf(format, args...)}
}
