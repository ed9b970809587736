package wsdlgo

import (
	"fmt"
	"io"

	"github.com/netwo-io/wsdlgen/pkg/plan"
)

// writeFaults renders every FaultUnion as a tagged struct (exactly one
// field populated, matching which declared fault element the server's
// <detail> carried) plus a constructor that matches a parsed fault
// envelope's detail against the union's variants.
func (ge *goEncoder) writeFaults(w io.Writer) error {
	for _, name := range ge.plan.FaultsOrder {
		fu := ge.plan.Faults[name]
		ge.genFaultUnion(w, fu)
	}
	return nil
}

func (ge *goEncoder) genFaultUnion(w io.Writer, fu *plan.FaultUnion) {
	ge.needsExtPkg["github.com/netwo-io/wsdlgen/pkg/xmlnode"] = true

	ge.writeComments(w, fu.Name, "is returned when the server reports one of this operation's declared faults. Exactly one field is populated.")
	fmt.Fprintf(w, "type %s struct {\n", fu.Name)
	for _, v := range fu.Variants {
		fmt.Fprintf(w, "%s *%s\n", fieldIdent(v.RecordName), v.RecordName)
	}
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func (f *%s) Error() string {\n", fu.Name)
	for _, v := range fu.Variants {
		fmt.Fprintf(w, "if f.%s != nil {\nreturn %q\n}\n", fieldIdent(v.RecordName), fu.Name+": "+v.RecordName)
	}
	fmt.Fprintf(w, "return %q\n}\n\n", fu.Name)

	fmt.Fprintf(w, "func new%s(detail *xmlnode.Node) *%s {\n", fu.Name, fu.Name)
	fmt.Fprintf(w, "if detail == nil {\nreturn nil\n}\n")
	fmt.Fprintf(w, "for _, c := range detail.Children() {\n")
	fmt.Fprintf(w, "switch c.Tag() {\n")
	for _, v := range fu.Variants {
		rec := ge.plan.Records[v.RecordName]
		wireName := v.RecordName
		if rec != nil {
			wireName = rec.SourceName
		}
		fmt.Fprintf(w, "case %q:\n", wireName)
		fmt.Fprintf(w, "x := &%s{}\n", v.RecordName)
		fmt.Fprintf(w, "if err := x.FromElement(c); err == nil {\n")
		fmt.Fprintf(w, "return &%s{%s: x}\n}\n", fu.Name, fieldIdent(v.RecordName))
	}
	fmt.Fprintf(w, "}\n}\n")
	fmt.Fprintf(w, "return nil\n}\n\n")
}
