package wsdlgo

import (
	"fmt"
	"io"

	"github.com/netwo-io/wsdlgen/pkg/plan"
)

// baseGoType returns the Go type for lt's innermost kind, before any
// repeated/optional wrapping.
func (ge *goEncoder) baseGoType(lt plan.LoweredType) string {
	switch lt.Base {
	case plan.KindBool:
		return "bool"
	case plan.KindString:
		return "string"
	case plan.KindInt64:
		return "int64"
	case plan.KindFloat64:
		return "float64"
	case plan.KindDateTime:
		ge.needsStdPkg["time"] = true
		return "time.Time"
	case plan.KindRecord:
		return "*" + lt.RecordName
	default:
		return "interface{}"
	}
}

// goType returns the full field type for lt, wrapping the base type in a
// slice for a repeated field or a pointer for an optional scalar. Optional
// record fields are already pointers via baseGoType, so Optional is a
// no-op there; repeated records are slices of the pointer type.
func (ge *goEncoder) goType(lt plan.LoweredType) string {
	base := ge.baseGoType(lt)
	if lt.Repeated {
		return "[]" + base
	}
	if lt.Optional && lt.Base != plan.KindRecord {
		return "*" + base
	}
	return base
}

// toWireExpr renders the Go expression that converts a scalar value
// expression of lt's base kind into its wire (string) representation.
func (ge *goEncoder) toWireExpr(lt plan.LoweredType, expr string) string {
	switch lt.Base {
	case plan.KindString:
		return expr
	case plan.KindBool:
		ge.needsStdPkg["strconv"] = true
		return fmt.Sprintf("strconv.FormatBool(%s)", expr)
	case plan.KindInt64:
		ge.needsStdPkg["strconv"] = true
		return fmt.Sprintf("strconv.FormatInt(%s, 10)", expr)
	case plan.KindFloat64:
		ge.needsStdPkg["strconv"] = true
		return fmt.Sprintf("strconv.FormatFloat(%s, 'f', -1, 64)", expr)
	case plan.KindDateTime:
		return fmt.Sprintf("(%s).Format(time.RFC3339Nano)", expr)
	default:
		return expr
	}
}

// fromWireCall returns the xmlnode.Node accessor method name used to parse
// a scalar of lt's base kind out of an element's text.
func (ge *goEncoder) fromWireCall(lt plan.LoweredType) string {
	switch lt.Base {
	case plan.KindString:
		return "AsString"
	case plan.KindBool:
		return "AsBoolean"
	case plan.KindInt64:
		return "AsLong"
	case plan.KindFloat64:
		return "AsFloat"
	case plan.KindDateTime:
		return "AsDateTime"
	default:
		return "AsString"
	}
}

// fieldError returns the *soap.Field... error constructor expression used
// when parsing field name's text fails, matching soap's CoreError taxonomy.
// Its default branch is only reached for a base kind with no dedicated
// Field* wrapper below — in practice genFieldErrorBlock always checks the
// xsi:type mismatch case first, so that default is a safety net, not a
// real dispatch target.
func (ge *goEncoder) fieldError(lt plan.LoweredType, name, errExpr string) string {
	switch lt.Base {
	case plan.KindInt64:
		return fmt.Sprintf("&soap.FieldParseInt{Name: %q, Err: %s}", name, errExpr)
	case plan.KindFloat64:
		return fmt.Sprintf("&soap.FieldParseFloat{Name: %q, Err: %s}", name, errExpr)
	case plan.KindDateTime:
		return fmt.Sprintf("&soap.FieldParseDateTime{Name: %q, Err: %s}", name, errExpr)
	case plan.KindBool:
		return fmt.Sprintf("&soap.FieldParseBool{Name: %q, Err: %s}", name, errExpr)
	default:
		return fmt.Sprintf("&soap.FieldExpectedType{Name: %q, Expected: \"string\", Given: %s.Error()}", name, errExpr)
	}
}

// genFieldErrorBlock writes the body of an "if err != nil { ... }" block
// handling a failed parse of field name (err already in scope). An
// *xmlnode.ErrExpectedType — the xsi:type-style attribute mismatch
// typedString checks — always becomes a *soap.FieldExpectedType regardless
// of lt's base kind, since that's a type-tag mismatch, not a malformed
// value; any other error falls through to fieldError's kind-specific
// wrapper.
func (ge *goEncoder) genFieldErrorBlock(w io.Writer, lt plan.LoweredType, name string) {
	ge.needsStdPkg["errors"] = true
	ge.needsExtPkg["github.com/netwo-io/wsdlgen/pkg/xmlnode"] = true
	fmt.Fprintf(w, "var wrongType *xmlnode.ErrExpectedType\n")
	fmt.Fprintf(w, "if errors.As(err, &wrongType) {\n")
	fmt.Fprintf(w, "return &soap.FieldExpectedType{Name: %q, Expected: wrongType.Expected, Given: wrongType.Given}\n", name)
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "return %s\n", ge.fieldError(lt, name, "err"))
}
