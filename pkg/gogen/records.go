package wsdlgo

import (
	"fmt"
	"io"

	"github.com/netwo-io/wsdlgen/pkg/plan"
)

// writeRecords renders every RecordPlan as a Go struct with ToElement and
// FromElement methods, in plan order.
func (ge *goEncoder) writeRecords(w io.Writer) error {
	for _, name := range ge.plan.RecordsOrder {
		rec := ge.plan.Records[name]
		if err := ge.genRecordStruct(w, rec); err != nil {
			return err
		}
		ge.genToElement(w, rec)
		ge.genFromElement(w, rec)
	}
	return nil
}

func (ge *goEncoder) genRecordStruct(w io.Writer, rec *plan.RecordPlan) error {
	ge.writeComments(w, rec.Name, fmt.Sprintf("was auto-generated from the %q WSDL/XSD type.", rec.SourceName))
	fmt.Fprintf(w, "type %s struct {\n", rec.Name)
	for _, f := range rec.Fields {
		fmt.Fprintf(w, "%s %s\n", fieldIdent(f.Name), ge.goType(f.Type))
	}
	fmt.Fprintf(w, "}\n\n")
	return nil
}

// fieldIdent exports rec.Fields' lower-snake name as an upper-camel Go
// struct field identifier. Field names are already disambiguated by
// pkg/plan, so a straightforward per-word title-case is all that's needed
// here; no further collision handling is required.
func fieldIdent(name string) string {
	out := make([]byte, 0, len(name))
	upperNext := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	return string(out)
}

// genToElement emits a "func (v *Rec) ToElement(name string) *xmlnode.Node"
// method that serializes v's fields as name's children, in declaration
// order.
func (ge *goEncoder) genToElement(w io.Writer, rec *plan.RecordPlan) {
	ge.needsExtPkg["github.com/netwo-io/wsdlgen/pkg/xmlnode"] = true
	ge.writeComments(w, "ToElement", fmt.Sprintf("serializes v as an element named name, per the %q field schedule.", rec.Name))
	fmt.Fprintf(w, "func (v *%s) ToElement(name string) *xmlnode.Node {\n", rec.Name)
	fmt.Fprintf(w, "n := xmlnode.New(name)\n")
	for _, f := range rec.Fields {
		ge.genFieldToElement(w, f)
	}
	fmt.Fprintf(w, "return n\n}\n\n")
}

func (ge *goEncoder) genFieldToElement(w io.Writer, f plan.Field) {
	v := "v." + fieldIdent(f.Name)
	child := func(valExpr string) string {
		if f.Type.Base == plan.KindRecord {
			return fmt.Sprintf("%s.ToElement(%q)", valExpr, f.SourceName)
		}
		return fmt.Sprintf("xmlnode.New(%q).WithText(%s)", f.SourceName, ge.toWireExpr(f.Type, valExpr))
	}

	switch {
	case f.Type.Repeated:
		fmt.Fprintf(w, "for _, x := range %s {\nn.WithChild(%s)\n}\n", v, child("x"))
	case f.Type.Optional && f.Type.Base != plan.KindRecord:
		fmt.Fprintf(w, "if %s != nil {\nn.WithChild(%s)\n}\n", v, child("*"+v))
	case f.Type.Base == plan.KindRecord:
		// pointer-typed record field: nil means the optional/required
		// reference was never populated, so skip it rather than panic.
		fmt.Fprintf(w, "if %s != nil {\nn.WithChild(%s)\n}\n", v, child(v))
	default:
		fmt.Fprintf(w, "n.WithChild(%s)\n", child(v))
	}
}

// genFromElement emits a "func (v *Rec) FromElement(n *xmlnode.Node) error"
// method that populates v's fields by descending into n's children.
func (ge *goEncoder) genFromElement(w io.Writer, rec *plan.RecordPlan) {
	ge.writeComments(w, "FromElement", fmt.Sprintf("populates v from n's children, per the %q field schedule.", rec.Name))
	fmt.Fprintf(w, "func (v *%s) FromElement(n *xmlnode.Node) error {\n", rec.Name)
	for _, f := range rec.Fields {
		ge.genFieldFromElement(w, f)
	}
	fmt.Fprintf(w, "return nil\n}\n\n")
}

func (ge *goEncoder) genFieldFromElement(w io.Writer, f plan.Field) {
	dst := "v." + fieldIdent(f.Name)
	ge.needsExtPkg["github.com/netwo-io/wsdlgen/pkg/soap"] = true

	if f.Type.Base == plan.KindRecord {
		ge.genRecordFieldFromElement(w, f, dst)
		return
	}

	if f.Type.Base == plan.KindString {
		ge.genStringFieldFromElement(w, f, dst)
		return
	}

	call := ge.fromWireCall(f.Type)
	switch {
	case f.Type.Repeated:
		fmt.Fprintf(w, "for _, c := range n.DescendAll(%q) {\n", f.SourceName)
		fmt.Fprintf(w, "x, err := c.%s()\n", call)
		fmt.Fprintf(w, "if err != nil {\n")
		ge.genFieldErrorBlock(w, f.Type, f.SourceName)
		fmt.Fprintf(w, "}\n")
		fmt.Fprintf(w, "%s = append(%s, x)\n}\n", dst, dst)
	case f.Type.Optional:
		// A present-but-unparsable optional element leaves the field nil
		// rather than failing the whole decode — only a genuinely absent
		// element and a parse failure are both "no value" here.
		fmt.Fprintf(w, "if c := n.DescendFirst(%q); c != nil {\n", f.SourceName)
		fmt.Fprintf(w, "if x, err := c.%s(); err == nil {\n%s = &x\n}\n", call, dst)
		fmt.Fprintf(w, "}\n")
	default:
		fmt.Fprintf(w, "c, err := n.Descend(%q)\n", f.SourceName)
		fmt.Fprintf(w, "if err != nil {\nreturn &soap.FieldNotFoundAtPath{Path: []string{%q}}\n}\n", f.SourceName)
		fmt.Fprintf(w, "x, err := c.%s()\n", call)
		fmt.Fprintf(w, "if err != nil {\n")
		ge.genFieldErrorBlock(w, f.Type, f.SourceName)
		fmt.Fprintf(w, "}\n")
		fmt.Fprintf(w, "%s = x\n", dst)
	}
}

// genStringFieldFromElement handles KindString separately: an element's
// text content is read directly via Text(), which never errors on an
// empty (but present) element, unlike AsString.
func (ge *goEncoder) genStringFieldFromElement(w io.Writer, f plan.Field, dst string) {
	switch {
	case f.Type.Repeated:
		fmt.Fprintf(w, "for _, c := range n.DescendAll(%q) {\n%s = append(%s, c.Text())\n}\n", f.SourceName, dst, dst)
	case f.Type.Optional:
		fmt.Fprintf(w, "if c := n.DescendFirst(%q); c != nil {\nx := c.Text()\n%s = &x\n}\n", f.SourceName, dst)
	default:
		fmt.Fprintf(w, "c, err := n.Descend(%q)\n", f.SourceName)
		fmt.Fprintf(w, "if err != nil {\nreturn &soap.FieldNotFoundAtPath{Path: []string{%q}}\n}\n", f.SourceName)
		fmt.Fprintf(w, "%s = c.Text()\n", dst)
	}
}

func (ge *goEncoder) genRecordFieldFromElement(w io.Writer, f plan.Field, dst string) {
	recType := f.Type.RecordName
	switch {
	case f.Type.Repeated:
		fmt.Fprintf(w, "for _, c := range n.DescendAll(%q) {\n", f.SourceName)
		fmt.Fprintf(w, "x := &%s{}\nif err := x.FromElement(c); err != nil {\nreturn err\n}\n", recType)
		fmt.Fprintf(w, "%s = append(%s, x)\n}\n", dst, dst)
	case f.Type.Optional:
		// Same "malformed is absent, not fatal" rule as the scalar case.
		fmt.Fprintf(w, "if c := n.DescendFirst(%q); c != nil {\n", f.SourceName)
		fmt.Fprintf(w, "x := &%s{}\nif err := x.FromElement(c); err == nil {\n%s = x\n}\n", recType, dst)
		fmt.Fprintf(w, "}\n")
	default:
		fmt.Fprintf(w, "c, err := n.Descend(%q)\n", f.SourceName)
		fmt.Fprintf(w, "if err != nil {\nreturn &soap.FieldNotFoundAtPath{Path: []string{%q}}\n}\n", f.SourceName)
		fmt.Fprintf(w, "x := &%s{}\nif err := x.FromElement(c); err != nil {\nreturn err\n}\n", recType)
		fmt.Fprintf(w, "%s = x\n", dst)
	}
}
