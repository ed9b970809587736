package xmlnode

import "fmt"

// ErrNotFoundAtPath is returned by GetAtPath when no element exists at the
// given descent trace.
type ErrNotFoundAtPath struct {
	Trace []string
}

func (e *ErrNotFoundAtPath) Error() string {
	return fmt.Sprintf("xmlnode: no element found at path %v", e.Trace)
}

// ErrElementWasEmpty is returned by the typed accessors when the element
// carries no text content to parse.
type ErrElementWasEmpty struct {
	Name string
}

func (e *ErrElementWasEmpty) Error() string {
	return fmt.Sprintf("xmlnode: element %q was empty", e.Name)
}

// ErrExpectedType is returned when a node doesn't match what the caller
// asked for: a typed accessor whose element carries a "type" attribute
// that doesn't end with the expected XSD kind, or Parse given a document
// with no root element.
type ErrExpectedType struct {
	Name     string
	Expected string
	Given    string
}

func (e *ErrExpectedType) Error() string {
	return fmt.Sprintf("xmlnode: %q expected %s, got %s", e.Name, e.Expected, e.Given)
}

// ErrParseInt is returned by AsLong/AsInt when the element text isn't a
// valid integer.
type ErrParseInt struct {
	Name string
	Err  error
}

func (e *ErrParseInt) Error() string {
	return fmt.Sprintf("xmlnode: %q is not an integer: %v", e.Name, e.Err)
}

func (e *ErrParseInt) Unwrap() error { return e.Err }

// ErrParseFloat is returned when the element text isn't a valid float.
type ErrParseFloat struct {
	Name string
	Err  error
}

func (e *ErrParseFloat) Error() string {
	return fmt.Sprintf("xmlnode: %q is not a float: %v", e.Name, e.Err)
}

func (e *ErrParseFloat) Unwrap() error { return e.Err }

// ErrParseBool is returned by AsBoolean when the element text isn't a
// valid boolean.
type ErrParseBool struct {
	Name string
	Err  error
}

func (e *ErrParseBool) Error() string {
	return fmt.Sprintf("xmlnode: %q is not a boolean: %v", e.Name, e.Err)
}

func (e *ErrParseBool) Unwrap() error { return e.Err }

// ErrParseDateTime is returned by AsDateTime when the element text isn't a
// valid RFC3339/xsd:dateTime value.
type ErrParseDateTime struct {
	Name string
	Err  error
}

func (e *ErrParseDateTime) Error() string {
	return fmt.Sprintf("xmlnode: %q is not a dateTime: %v", e.Name, e.Err)
}

func (e *ErrParseDateTime) Unwrap() error { return e.Err }
