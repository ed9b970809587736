package soap

import (
	"fmt"

	"github.com/netwo-io/wsdlgen/pkg/xmlnode"
)

// CoreError is the runtime error taxonomy surfaced by the SOAP envelope
// codec and the generated client's field (de)serialization. Every
// concrete type below implements error and satisfies CoreError so callers
// can type-switch or errors.As into the variant they care about.
type CoreError interface {
	error
	coreError()
}

// TransportError wraps a POST failure — non-2xx status or a network error
// returned by the injected Transport.
type TransportError struct {
	Status int // 0 if the transport never got a response at all
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("soap: transport: %v", e.Err)
	}
	return fmt.Sprintf("soap: transport: unexpected status %d", e.Status)
}
func (e *TransportError) Unwrap() error { return e.Err }
func (*TransportError) coreError()      {}

// XMLParse is returned when a response body is not well-formed XML.
type XMLParse struct {
	Err error
}

func (e *XMLParse) Error() string { return fmt.Sprintf("soap: response is not well-formed XML: %v", e.Err) }
func (e *XMLParse) Unwrap() error { return e.Err }
func (*XMLParse) coreError()      {}

// UnexpectedRoot is returned when the response's root element's local
// name isn't "Envelope".
type UnexpectedRoot struct {
	Tag string
}

func (e *UnexpectedRoot) Error() string {
	return fmt.Sprintf("soap: unexpected root element %q, want Envelope", e.Tag)
}
func (*UnexpectedRoot) coreError() {}

// EnvelopeFault is a server-reported SOAP fault, orthogonal to any
// operation-declared fault union: a Fault that doesn't match a declared
// variant by name surfaces as this error instead.
type EnvelopeFault struct {
	Code   string
	String string
	Detail *xmlnode.Node
}

func (e *EnvelopeFault) Error() string {
	return fmt.Sprintf("soap: fault %s: %s", e.Code, e.String)
}
func (*EnvelopeFault) coreError() {}

// FieldNotFoundAtPath is returned when a required field's element is
// missing from the response body at the expected path.
type FieldNotFoundAtPath struct {
	Path []string
}

func (e *FieldNotFoundAtPath) Error() string {
	return fmt.Sprintf("soap: field not found at path %v", e.Path)
}
func (*FieldNotFoundAtPath) coreError() {}

// FieldExpectedType is returned when a field's element didn't carry the
// expected XSD type.
type FieldExpectedType struct {
	Name, Expected, Given string
}

func (e *FieldExpectedType) Error() string {
	return fmt.Sprintf("soap: field %q: expected type %s, got %s", e.Name, e.Expected, e.Given)
}
func (*FieldExpectedType) coreError() {}

// FieldParseInt is returned when a field's text couldn't be parsed as an
// integer.
type FieldParseInt struct {
	Name string
	Err  error
}

func (e *FieldParseInt) Error() string { return fmt.Sprintf("soap: field %q: not an integer: %v", e.Name, e.Err) }
func (e *FieldParseInt) Unwrap() error { return e.Err }
func (*FieldParseInt) coreError()      {}

// FieldParseBool is returned when a field's text couldn't be parsed as an
// xsd:boolean.
type FieldParseBool struct {
	Name string
	Err  error
}

func (e *FieldParseBool) Error() string { return fmt.Sprintf("soap: field %q: not a boolean: %v", e.Name, e.Err) }
func (e *FieldParseBool) Unwrap() error { return e.Err }
func (*FieldParseBool) coreError()      {}

// FieldParseFloat is returned when a field's text couldn't be parsed as a
// float.
type FieldParseFloat struct {
	Name string
	Err  error
}

func (e *FieldParseFloat) Error() string { return fmt.Sprintf("soap: field %q: not a float: %v", e.Name, e.Err) }
func (e *FieldParseFloat) Unwrap() error { return e.Err }
func (*FieldParseFloat) coreError()      {}

// FieldParseDateTime is returned when a field's text couldn't be parsed
// as an xsd:dateTime value.
type FieldParseDateTime struct {
	Name string
	Err  error
}

func (e *FieldParseDateTime) Error() string {
	return fmt.Sprintf("soap: field %q: not a dateTime: %v", e.Name, e.Err)
}
func (e *FieldParseDateTime) Unwrap() error { return e.Err }
func (*FieldParseDateTime) coreError()      {}

// Unimplemented is returned by the stub generated for the
// (input, no output, faults) operation shape and for operations with no
// input message — a documented emitter limitation (spec §9), not a bug to
// route around silently.
type Unimplemented struct {
	Operation string
}

func (e *Unimplemented) Error() string {
	return fmt.Sprintf("soap: operation %q is not callable (input/faults-only and no-input shapes are unsupported)", e.Operation)
}
func (*Unimplemented) coreError() {}
