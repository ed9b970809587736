package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceModelOrderIsInsertionOrder(t *testing.T) {
	sm := NewServiceModel()
	sm.AddType(&TypeDef{Name: "Zeta"})
	sm.AddType(&TypeDef{Name: "Alpha"})
	sm.AddType(&TypeDef{Name: "Mu"})

	assert.Equal(t, []string{"Zeta", "Alpha", "Mu"}, sm.TypesOrder)

	// Re-registering an existing name updates the value but not the order.
	sm.AddType(&TypeDef{Name: "Alpha", Kind: KindComplex})
	assert.Equal(t, []string{"Zeta", "Alpha", "Mu"}, sm.TypesOrder)
	assert.Equal(t, KindComplex, sm.Types["Alpha"].Kind)
}

func TestFieldAttrsRepeated(t *testing.T) {
	num := func(n uint32) *Occurrence { return &Occurrence{Num: n} }
	unbounded := &Occurrence{Unbounded: true}

	cases := []struct {
		name string
		attr FieldAttrs
		want bool
	}{
		{"neither set", FieldAttrs{}, false},
		{"only min", FieldAttrs{MinOccurs: num(0)}, false},
		{"both set", FieldAttrs{MinOccurs: num(0), MaxOccurs: num(5)}, true},
		{"both set unbounded", FieldAttrs{MinOccurs: num(1), MaxOccurs: unbounded}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.attr.Repeated())
		})
	}
}

func TestOperationShape(t *testing.T) {
	cases := []struct {
		name string
		op   OperationDef
		want OpShape
	}{
		{"one-way", OperationDef{Input: "In"}, ShapeOneWay},
		{"request-response", OperationDef{Input: "In", Output: "Out"}, ShapeRequestResponse},
		{"request-response-with-faults", OperationDef{Input: "In", Output: "Out", Faults: []string{"F"}}, ShapeRequestResponseWithFaults},
		{"input-faults-only", OperationDef{Input: "In", Faults: []string{"F"}}, ShapeInputFaultsOnly},
		{"no input", OperationDef{Output: "Out"}, ShapeUnsupported},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.op.Shape())
		})
	}
}
