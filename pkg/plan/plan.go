// Package plan lowers a model.ServiceModel into a BindingPlan: normalized
// identifiers, a resolved field-type lowering for every record, and
// serialize/deserialize schedules the emitter renders textually without
// having to make any further type decisions itself.
package plan

import (
	"github.com/netwo-io/wsdlgen/pkg/model"
)

// BaseKind is the innermost layer of a lowered field type.
type BaseKind int

const (
	KindBool BaseKind = iota
	KindString
	KindInt64
	KindFloat64
	KindDateTime
	KindRecord
)

// LoweredType composes the three layers spec.md §4.D's lowering table
// describes: a base kind, then (optionally) a repeated-sequence wrap,
// then (optionally) an optional/nillable wrap.
type LoweredType struct {
	Base BaseKind
	// RecordName is set only when Base == KindRecord, naming the
	// normalized RecordPlan this field's value is an instance of.
	RecordName string
	Repeated   bool
	Optional   bool
}

// Field is one normalized, lowered member of a RecordPlan.
type Field struct {
	Name       string // normalized lower-snake
	SourceName string // original XSD element name, used to locate it by path on the wire
	Type       LoweredType
	Nillable   bool
}

// RecordPlan is the lowering of one model.TypeDef (always KindComplex in
// practice — see model.TypeDef's Kind doc).
type RecordPlan struct {
	Name       string // normalized upper-camel
	SourceName string
	Fields     []Field
}

// WrapperPlan is a message's single-field newtype: its (de)serialization
// delegates entirely to the inner record.
type WrapperPlan struct {
	Name        string // normalized upper-camel
	SourceName  string
	RecordName  string // the RecordPlan this wrapper delegates to
	ElementName string // the wire element name (message's part_element)
}

// FaultVariant is one arm of a FaultUnion.
type FaultVariant struct {
	Name       string // normalized upper-camel, taken from the fault message's part element
	RecordName string
}

// FaultUnion is the tagged union emitted for an operation that declares
// one or more faults.
type FaultUnion struct {
	Name     string // normalized upper-camel, "<Operation>Fault"
	Variants []FaultVariant
}

// OpPlan is the lowering of one model.OperationDef.
type OpPlan struct {
	Name         string // normalized lower-snake
	SourceName   string
	Shape        model.OpShape
	Namespace    string // = ServiceModel.TargetNamespace
	InputRecord  string // normalized record name for the input wrapper's element
	OutputRecord string // "" if no output
	Faults       *FaultUnion
}

// BindingPlan is the fully-lowered, immutable plan the emitter renders.
type BindingPlan struct {
	ServiceName string
	Namespace   string
	EndpointURL string

	Records      map[string]*RecordPlan
	RecordsOrder []string

	Wrappers      map[string]*WrapperPlan
	WrappersOrder []string

	Operations      map[string]*OpPlan
	OperationsOrder []string

	Faults      map[string]*FaultUnion
	FaultsOrder []string
}

type builder struct {
	sm *model.ServiceModel

	// typeNames maps a source type name to its normalized upper-camel
	// name; used both to rename RecordPlan.Name and to resolve
	// ComplexRef field types.
	typeNames map[string]string
	// normalizedTypes detects invariant-5 collisions among type names.
	normalizedTypes map[string]string // normalized -> source

	fieldNames     map[string]string // "TypeName.fieldName" -> normalized
	normalizedOps  map[string]string // normalized -> source operation name
}

// Build lowers sm into a BindingPlan. Errors surface invariant violations
// (unresolved references) or post-normalization name collisions.
func Build(sm *model.ServiceModel) (*BindingPlan, error) {
	b := &builder{
		sm:              sm,
		typeNames:       make(map[string]string),
		normalizedTypes: make(map[string]string),
		fieldNames:      make(map[string]string),
		normalizedOps:   make(map[string]string),
	}

	if err := b.normalizeTypeNames(); err != nil {
		return nil, err
	}

	plan := &BindingPlan{
		ServiceName: upperCamel(sm.ServiceName),
		Namespace:   sm.TargetNamespace,
		EndpointURL: sm.EndpointURL,
		Records:     make(map[string]*RecordPlan),
		Wrappers:    make(map[string]*WrapperPlan),
		Operations:  make(map[string]*OpPlan),
		Faults:      make(map[string]*FaultUnion),
	}

	for _, name := range sm.TypesOrder {
		t := sm.Types[name]
		if t.Kind != model.KindComplex {
			continue
		}
		rec, err := b.buildRecord(t)
		if err != nil {
			return nil, err
		}
		plan.Records[rec.Name] = rec
		plan.RecordsOrder = append(plan.RecordsOrder, rec.Name)
	}

	for _, name := range sm.MessagesOrder {
		msg := sm.Messages[name]
		w, err := b.buildWrapper(msg)
		if err != nil {
			return nil, err
		}
		plan.Wrappers[w.Name] = w
		plan.WrappersOrder = append(plan.WrappersOrder, w.Name)
	}

	for _, name := range sm.OperationsOrder {
		op := sm.Operations[name]
		opPlan, fault, err := b.buildOperation(op, plan)
		if err != nil {
			return nil, err
		}
		plan.Operations[opPlan.Name] = opPlan
		plan.OperationsOrder = append(plan.OperationsOrder, opPlan.Name)
		if fault != nil {
			plan.Faults[fault.Name] = fault
			plan.FaultsOrder = append(plan.FaultsOrder, fault.Name)
		}
	}

	return plan, nil
}

func (b *builder) normalizeTypeNames() error {
	for _, name := range b.sm.TypesOrder {
		norm := upperCamel(name)
		if existing, ok := b.normalizedTypes[norm]; ok && existing != name {
			return &NameCollision{Normalized: norm, First: existing, Second: name}
		}
		b.normalizedTypes[norm] = name
		b.typeNames[name] = norm
	}
	return nil
}

func (b *builder) resolveRecordName(sourceName string) (string, error) {
	norm, ok := b.typeNames[sourceName]
	if !ok {
		return "", &UnresolvedReference{Kind: "type", Name: sourceName}
	}
	return norm, nil
}

func (b *builder) lowerFieldType(f model.Field) (LoweredType, error) {
	var lt LoweredType
	switch f.Type.Tag {
	case model.Boolean:
		lt.Base = KindBool
	case model.String:
		lt.Base = KindString
	case model.Int:
		lt.Base = KindInt64
	case model.Float:
		lt.Base = KindFloat64
	case model.DateTime:
		lt.Base = KindDateTime
	case model.ComplexRef:
		lt.Base = KindRecord
		recName, err := b.resolveRecordName(f.Type.Name)
		if err != nil {
			return LoweredType{}, err
		}
		lt.RecordName = recName
	}

	lt.Repeated = f.Attrs.Repeated()
	lt.Optional = f.Attrs.Nillable

	return lt, nil
}

func (b *builder) buildRecord(t *model.TypeDef) (*RecordPlan, error) {
	recName := b.typeNames[t.Name]

	rec := &RecordPlan{
		Name:       recName,
		SourceName: t.Name,
	}

	normFields := make(map[string]string)
	for _, f := range t.Fields {
		fieldNorm := lowerSnake(f.Name)
		if existing, ok := normFields[fieldNorm]; ok && existing != f.Name {
			return nil, &NameCollision{Normalized: t.Name + "." + fieldNorm, First: existing, Second: f.Name}
		}
		normFields[fieldNorm] = f.Name

		lowered, err := b.lowerFieldType(f)
		if err != nil {
			return nil, err
		}

		rec.Fields = append(rec.Fields, Field{
			Name:       fieldNorm,
			SourceName: f.Name,
			Type:       lowered,
			Nillable:   f.Attrs.Nillable,
		})
	}

	return rec, nil
}

func (b *builder) buildWrapper(msg *model.MessageDef) (*WrapperPlan, error) {
	recName, err := b.resolveRecordName(msg.PartElement)
	if err != nil {
		return nil, err
	}
	return &WrapperPlan{
		Name:        upperCamel(msg.Name),
		SourceName:  msg.Name,
		RecordName:  recName,
		ElementName: msg.PartElement,
	}, nil
}

func (b *builder) wrapperRecordFor(messageName string, plan *BindingPlan) (string, error) {
	msg, ok := b.sm.Messages[messageName]
	if !ok {
		return "", &UnresolvedReference{Kind: "message", Name: messageName}
	}
	return b.resolveRecordName(msg.PartElement)
}

func (b *builder) buildOperation(op *model.OperationDef, plan *BindingPlan) (*OpPlan, *FaultUnion, error) {
	opNorm := lowerSnake(op.Name)
	if existing, ok := b.normalizedOps[opNorm]; ok && existing != op.Name {
		return nil, nil, &NameCollision{Normalized: opNorm, First: existing, Second: op.Name}
	}
	b.normalizedOps[opNorm] = op.Name

	opPlan := &OpPlan{
		Name:       opNorm,
		SourceName: op.Name,
		Shape:      op.Shape(),
		Namespace:  b.sm.TargetNamespace,
	}

	if op.Input != "" {
		rec, err := b.wrapperRecordFor(op.Input, plan)
		if err != nil {
			return nil, nil, err
		}
		opPlan.InputRecord = rec
	}
	if op.Output != "" {
		rec, err := b.wrapperRecordFor(op.Output, plan)
		if err != nil {
			return nil, nil, err
		}
		opPlan.OutputRecord = rec
	}

	var fault *FaultUnion
	if len(op.Faults) > 0 {
		fault = &FaultUnion{Name: upperCamel(op.Name) + "Fault"}
		for _, faultMsg := range op.Faults {
			rec, err := b.wrapperRecordFor(faultMsg, plan)
			if err != nil {
				return nil, nil, err
			}
			fault.Variants = append(fault.Variants, FaultVariant{
				Name:       rec,
				RecordName: rec,
			})
		}
		opPlan.Faults = fault
	}

	return opPlan, fault, nil
}
