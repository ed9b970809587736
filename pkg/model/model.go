// Package model holds the normalized, in-memory representation of a WSDL
// service: its types, messages, and operations, as scanned by pkg/wsdl
// out of the WSDL/XSD subset this generator accepts. It is deliberately
// free of any XML or Go-source concerns — those live in pkg/wsdl and
// pkg/gogen respectively — so the planner (pkg/plan) has a single stable
// shape to consume regardless of how the WSDL happened to be written.
package model

// SimpleKindTag enumerates the XSD primitive kinds this generator
// understands, plus ComplexRef for a reference to another named type.
type SimpleKindTag int

const (
	Boolean SimpleKindTag = iota
	String
	Float
	Int
	DateTime
	ComplexRef
)

// SimpleKind is a resolved field type: one of the built-in scalar kinds,
// or — when Tag is ComplexRef — a named reference to another entry in
// ServiceModel.Types (forward references are permitted).
type SimpleKind struct {
	Tag  SimpleKindTag
	Name string // set only when Tag == ComplexRef
}

// Occurrence is the Option<Unbounded|Num(u32)> pair WSDL's minOccurs/
// maxOccurs attributes carry. A nil *Occurrence means the attribute was
// absent.
type Occurrence struct {
	Unbounded bool
	Num       uint32 // meaningful only when !Unbounded
}

// FieldAttrs mirrors spec FieldAttrs exactly: nillable plus the
// min/maxOccurs pair, each independently optional.
type FieldAttrs struct {
	Nillable  bool
	MinOccurs *Occurrence
	MaxOccurs *Occurrence
}

// Repeated reports whether both minOccurs and maxOccurs were present —
// the WSDL convention this generator's reference corpus uses to mark a
// field as a repeated sequence (see pkg/plan's field-type lowering).
func (f FieldAttrs) Repeated() bool {
	return f.MinOccurs != nil && f.MaxOccurs != nil
}

// Field is one member of a Complex TypeDef's field sequence. Order in the
// containing slice is significant — XSD <sequence> is position-significant
// on the wire and must be preserved end to end.
type Field struct {
	Name  string
	Type  SimpleKind
	Attrs FieldAttrs
}

// TypeKind distinguishes the two TypeDef shapes this generator models.
type TypeKind int

const (
	KindSimple TypeKind = iota
	KindComplex
)

// TypeDef is one named type scanned out of <xsd:schema>, tagged by Kind.
type TypeDef struct {
	Name string
	Kind TypeKind

	// Valid when Kind == KindSimple — a bare alias for one of the
	// built-in scalar kinds (complex-type entries are always KindComplex;
	// this arm exists for completeness of the tagged union spec.md
	// defines, even though the WSDL scan in pkg/wsdl only ever produces
	// KindComplex entries for named top-level types).
	Simple SimpleKind

	// Valid when Kind == KindComplex. Order MUST be preserved from the
	// schema.
	Fields []Field
}

// MessageDef is a WSDL <message>: its single nested part's name and the
// element it binds to (document style — this generator has no RPC-style
// multi-part support, matching spec scope).
type MessageDef struct {
	Name        string
	PartName    string
	PartElement string
}

// OpShape classifies an operation by which of input/output/fault message
// references are present.
type OpShape int

const (
	// ShapeOneWay: input present, no output, no faults.
	ShapeOneWay OpShape = iota
	// ShapeRequestResponse: input and output both present, no faults.
	ShapeRequestResponse
	// ShapeRequestResponseWithFaults: input, output, and faults all present.
	ShapeRequestResponseWithFaults
	// ShapeInputFaultsOnly: input present, no output, but fault messages
	// declared. Parseable but has no useful runtime semantics — emits a
	// no-op stub (spec §9 Open Question 2; see DESIGN.md).
	ShapeInputFaultsOnly
	// ShapeUnsupported: no input at all.
	ShapeUnsupported
)

// OperationDef is a WSDL <portType>/<operation>. Input/Output hold a
// message name or "" if absent; Faults holds zero or more message names
// in declaration order.
type OperationDef struct {
	Name   string
	Input  string
	Output string
	Faults []string
}

// Shape classifies op by which of Input/Output/Faults are present, per
// the four shapes spec.md §3 enumerates.
func (op OperationDef) Shape() OpShape {
	switch {
	case op.Input == "":
		return ShapeUnsupported
	case op.Output != "" && len(op.Faults) > 0:
		return ShapeRequestResponseWithFaults
	case op.Output != "":
		return ShapeRequestResponse
	case len(op.Faults) > 0:
		return ShapeInputFaultsOnly
	default:
		return ShapeOneWay
	}
}

// ServiceModel is the fully-scanned, normalized WSDL service: every type,
// message, and operation, each held in a name-keyed map plus a parallel
// ordered-name slice so that iteration is always deterministic (invariant
// 4 in spec.md §3) regardless of Go's randomized map order.
type ServiceModel struct {
	ServiceName     string
	TargetNamespace string
	EndpointURL     string

	Types      map[string]*TypeDef
	TypesOrder []string

	Messages      map[string]*MessageDef
	MessagesOrder []string

	Operations      map[string]*OperationDef
	OperationsOrder []string
}

// NewServiceModel returns an empty, initialized ServiceModel ready for the
// scan steps in pkg/wsdl to populate.
func NewServiceModel() *ServiceModel {
	return &ServiceModel{
		Types:      make(map[string]*TypeDef),
		Messages:   make(map[string]*MessageDef),
		Operations: make(map[string]*OperationDef),
	}
}

// AddType registers t, keyed by its Name, and appends it to TypesOrder
// unless it was already registered (re-registration replaces the value in
// place but does not reorder).
func (sm *ServiceModel) AddType(t *TypeDef) {
	if _, exists := sm.Types[t.Name]; !exists {
		sm.TypesOrder = append(sm.TypesOrder, t.Name)
	}
	sm.Types[t.Name] = t
}

// AddMessage registers m the same way AddType does for types.
func (sm *ServiceModel) AddMessage(m *MessageDef) {
	if _, exists := sm.Messages[m.Name]; !exists {
		sm.MessagesOrder = append(sm.MessagesOrder, m.Name)
	}
	sm.Messages[m.Name] = m
}

// AddOperation registers op the same way AddType does for types.
func (sm *ServiceModel) AddOperation(op *OperationDef) {
	if _, exists := sm.Operations[op.Name]; !exists {
		sm.OperationsOrder = append(sm.OperationsOrder, op.Name)
	}
	sm.Operations[op.Name] = op
}
