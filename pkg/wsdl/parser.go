package wsdl

import (
	"strconv"
	"strings"

	"github.com/netwo-io/wsdlgen/pkg/model"
	"github.com/netwo-io/wsdlgen/pkg/xmlnode"
)

// Parse reads a WSDL 1.1 document (plus its embedded XSD subset) and
// returns its normalized model.ServiceModel. Bindings are intentionally
// ignored: the generator assumes document/literal SOAP 1.1 over HTTP
// POST, a simplifying contract rather than a bug.
func Parse(data []byte) (*model.ServiceModel, error) {
	root, err := xmlnode.ParseBytes(data)
	if err != nil {
		return nil, &ErrParse{Err: err}
	}

	sm := model.NewServiceModel()

	if ns, ok := root.Attr("targetNamespace"); ok {
		sm.TargetNamespace = ns
	}

	if err := scanTypes(root, sm); err != nil {
		return nil, err
	}
	if err := scanMessages(root, sm); err != nil {
		return nil, err
	}
	if err := scanPortType(root, sm); err != nil {
		return nil, err
	}
	if err := scanService(root, sm); err != nil {
		return nil, err
	}

	return sm, nil
}

// stripPrefix removes a leading "prefix:" qualifier. Namespace collisions
// across a WSDL's several schemas are a known, documented limitation —
// see the namespace Open Question in DESIGN.md.
func stripPrefix(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func requireAttr(n *xmlnode.Node, name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok {
		return "", &ErrAttributeNotFound{Name: name}
	}
	return v, nil
}

func simpleKindOf(xsdType string) model.SimpleKind {
	switch stripPrefix(xsdType) {
	case "boolean":
		return model.SimpleKind{Tag: model.Boolean}
	case "string":
		return model.SimpleKind{Tag: model.String}
	case "int":
		return model.SimpleKind{Tag: model.Int}
	case "float":
		return model.SimpleKind{Tag: model.Float}
	case "dateTime":
		return model.SimpleKind{Tag: model.DateTime}
	default:
		return model.SimpleKind{Tag: model.ComplexRef, Name: stripPrefix(xsdType)}
	}
}

// parseOccurs parses a minOccurs/maxOccurs attribute value per spec §4.C:
// absent -> nil, "unbounded" -> Unbounded, decimal -> Num(n). Anything
// else is a parse error.
func parseOccurs(n *xmlnode.Node, attr string) (*model.Occurrence, error) {
	v, ok := n.Attr(attr)
	if !ok {
		return nil, nil
	}
	if v == "unbounded" {
		return &model.Occurrence{Unbounded: true}, nil
	}
	num, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, &ErrParse{Err: err}
	}
	return &model.Occurrence{Num: uint32(num)}, nil
}

// scanTypes implements spec §4.C step 1.
func scanTypes(root *xmlnode.Node, sm *model.ServiceModel) error {
	typesEl, err := root.Descend("types")
	if err != nil {
		return &ErrElementNotFound{Name: "types"}
	}
	children := typesEl.Children()
	if len(children) == 0 {
		return &ErrEmpty{Context: "types"}
	}
	schema := children[0]

	for _, elem := range schema.Children() {
		name, err := requireAttr(elem, "name")
		if err != nil {
			return err
		}

		var complexTypeEl *xmlnode.Node
		if elem.Tag() == "complexType" {
			complexTypeEl = elem
		} else {
			grandchildren := elem.Children()
			if len(grandchildren) == 0 {
				return &ErrEmpty{Context: "types/" + name}
			}
			first := grandchildren[0]
			if first.Tag() != "complexType" {
				return &ErrNotAnElement{Context: "types/" + name}
			}
			complexTypeEl = first
		}

		fieldContainer := complexTypeEl.Children()
		if len(fieldContainer) == 0 {
			return &ErrEmpty{Context: "types/" + name + "/complexType"}
		}
		sequenceEl := fieldContainer[0]

		var fields []model.Field
		for _, fieldEl := range sequenceEl.Children() {
			fieldName, err := requireAttr(fieldEl, "name")
			if err != nil {
				return err
			}
			fieldType, err := requireAttr(fieldEl, "type")
			if err != nil {
				return err
			}
			nillable := fieldEl.AttrOr("nillable", "") == "true"
			minOccurs, err := parseOccurs(fieldEl, "minOccurs")
			if err != nil {
				return err
			}
			maxOccurs, err := parseOccurs(fieldEl, "maxOccurs")
			if err != nil {
				return err
			}

			fields = append(fields, model.Field{
				Name: fieldName,
				Type: simpleKindOf(fieldType),
				Attrs: model.FieldAttrs{
					Nillable:  nillable,
					MinOccurs: minOccurs,
					MaxOccurs: maxOccurs,
				},
			})
		}

		sm.AddType(&model.TypeDef{
			Name:   name,
			Kind:   model.KindComplex,
			Fields: fields,
		})
	}

	return nil
}

// scanMessages implements spec §4.C step 2.
func scanMessages(root *xmlnode.Node, sm *model.ServiceModel) error {
	for _, msgEl := range root.DescendAll("message") {
		name, err := requireAttr(msgEl, "name")
		if err != nil {
			return err
		}
		parts := msgEl.Children()
		if len(parts) == 0 {
			return &ErrEmpty{Context: "message/" + name}
		}
		part := parts[0]
		partName, err := requireAttr(part, "name")
		if err != nil {
			return err
		}
		partElement, err := requireAttr(part, "element")
		if err != nil {
			return err
		}

		sm.AddMessage(&model.MessageDef{
			Name:        name,
			PartName:    partName,
			PartElement: stripPrefix(partElement),
		})
	}
	return nil
}

// scanPortType implements spec §4.C step 3.
func scanPortType(root *xmlnode.Node, sm *model.ServiceModel) error {
	portType, err := root.Descend("portType")
	if err != nil {
		return &ErrElementNotFound{Name: "portType"}
	}

	for _, opEl := range portType.Children() {
		opName, err := requireAttr(opEl, "name")
		if err != nil {
			return err
		}

		op := &model.OperationDef{Name: opName}
		for _, member := range opEl.Children() {
			msg, err := requireAttr(member, "message")
			if err != nil {
				return err
			}
			msg = stripPrefix(msg)

			switch member.Tag() {
			case "input":
				op.Input = msg
			case "output":
				op.Output = msg
			case "fault":
				op.Faults = append(op.Faults, msg)
			default:
				return &ErrElementNotFound{Name: "operation member"}
			}
		}

		sm.AddOperation(op)
	}
	return nil
}

// scanService implements spec §4.C step 4, plus the endpoint address the
// runtime client needs (read from the first <port>'s <address location=.../>,
// a detail spec.md leaves to the emitter/runtime contract in §4.F).
func scanService(root *xmlnode.Node, sm *model.ServiceModel) error {
	serviceEl, err := root.Descend("service")
	if err != nil {
		return &ErrElementNotFound{Name: "service"}
	}
	name, err := requireAttr(serviceEl, "name")
	if err != nil {
		return err
	}
	sm.ServiceName = name

	if port := serviceEl.DescendFirst("port"); port != nil {
		if addr := port.DescendFirst("address"); addr != nil {
			sm.EndpointURL = addr.AttrOr("location", "")
		}
	}
	return nil
}
