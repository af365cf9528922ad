package flatfield

import (
	"fmt"
	"strconv"
)

// ConfigError reports an invalid column declaration. Err aggregates every
// individual problem found, so one round of validation is enough to see
// them all.
type ConfigError struct {
	Name string // column name, possibly empty when that is what's wrong
	Err  error
}

func (e *ConfigError) Error() string {
	return "flatfield: invalid config for column " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ParseError reports raw text that could not be coerced to a column's
// type. Value holds the offending raw text exactly as presented.
type ParseError struct {
	Column string
	Value  string
	Type   Type
	Cause  error
}

func (e *ParseError) Error() string {
	s := "flatfield: cannot parse " + strconv.Quote(e.Value) + " as " + string(e.Type) +
		" in column " + strconv.Quote(e.Column)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Cause }

// FormatError reports a value that could not be rendered as a column's
// type, or a transform that rejected the rendered text.
type FormatError struct {
	Column string
	Value  any
	Type   Type
	Cause  error
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("flatfield: cannot render %v as %s in column %q", e.Value, e.Type, e.Column)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Cause }

// LengthExceededError reports a rendered value longer than the column
// width on a column that does not permit truncation. Value holds the full
// rendered text, after any transform.
type LengthExceededError struct {
	Column string
	Value  string
	Width  int
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("flatfield: value %q is longer than %d characters in column %q",
		e.Value, e.Width, e.Column)
}
