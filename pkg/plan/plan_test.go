package plan

import (
	"testing"

	"github.com/netwo-io/wsdlgen/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleModel() *model.ServiceModel {
	sm := model.NewServiceModel()
	sm.ServiceName = "widget_service"
	sm.TargetNamespace = "urn:widget"
	sm.EndpointURL = "http://example.com/widget"

	sm.AddType(&model.TypeDef{
		Name: "WidgetRecord",
		Kind: model.KindComplex,
		Fields: []model.Field{
			{Name: "Name", Type: model.SimpleKind{Tag: model.String}},
			{Name: "Price", Type: model.SimpleKind{Tag: model.Float}},
			{
				Name: "Tag",
				Type: model.SimpleKind{Tag: model.String},
				Attrs: model.FieldAttrs{
					MinOccurs: &model.Occurrence{Num: 0},
					MaxOccurs: &model.Occurrence{Unbounded: true},
				},
			},
		},
	})
	sm.AddType(&model.TypeDef{
		Name: "GetWidget",
		Kind: model.KindComplex,
		Fields: []model.Field{
			{Name: "Id", Type: model.SimpleKind{Tag: model.Int}},
		},
	})
	sm.AddType(&model.TypeDef{
		Name: "GetWidgetResponse",
		Kind: model.KindComplex,
		Fields: []model.Field{
			{Name: "Widget", Type: model.SimpleKind{Tag: model.ComplexRef, Name: "WidgetRecord"}},
		},
	})
	sm.AddType(&model.TypeDef{
		Name: "WidgetFault",
		Kind: model.KindComplex,
		Fields: []model.Field{
			{Name: "Reason", Type: model.SimpleKind{Tag: model.String}},
		},
	})

	sm.AddMessage(&model.MessageDef{Name: "GetWidgetRequest", PartName: "parameters", PartElement: "GetWidget"})
	sm.AddMessage(&model.MessageDef{Name: "GetWidgetReply", PartName: "parameters", PartElement: "GetWidgetResponse"})
	sm.AddMessage(&model.MessageDef{Name: "WidgetFaultMessage", PartName: "parameters", PartElement: "WidgetFault"})

	sm.AddOperation(&model.OperationDef{
		Name:   "GetWidget",
		Input:  "GetWidgetRequest",
		Output: "GetWidgetReply",
		Faults: []string{"WidgetFaultMessage"},
	})

	return sm
}

func TestBuildPlanHappyPath(t *testing.T) {
	sm := buildSampleModel()
	p, err := Build(sm)
	require.NoError(t, err)

	assert.Equal(t, "WidgetService", p.ServiceName)
	assert.Equal(t, "urn:widget", p.Namespace)

	require.Contains(t, p.Records, "WidgetRecord")
	rec := p.Records["WidgetRecord"]
	require.Len(t, rec.Fields, 3)
	assert.Equal(t, "name", rec.Fields[0].Name)
	assert.Equal(t, KindString, rec.Fields[0].Type.Base)
	assert.Equal(t, "tag", rec.Fields[2].Name)
	assert.True(t, rec.Fields[2].Type.Repeated)

	require.Contains(t, p.Records, "GetWidgetResponse")
	respRec := p.Records["GetWidgetResponse"]
	require.Len(t, respRec.Fields, 1)
	assert.Equal(t, KindRecord, respRec.Fields[0].Type.Base)
	assert.Equal(t, "WidgetRecord", respRec.Fields[0].Type.RecordName)

	require.Contains(t, p.Operations, "get_widget")
	op := p.Operations["get_widget"]
	assert.Equal(t, "GetWidget", op.InputRecord)
	assert.Equal(t, "GetWidgetResponse", op.OutputRecord)
	require.NotNil(t, op.Faults)
	assert.Equal(t, "GetWidgetFault", op.Faults.Name)
	require.Len(t, op.Faults.Variants, 1)
	assert.Equal(t, "WidgetFault", op.Faults.Variants[0].RecordName)
}

func TestBuildPlanNameCollision(t *testing.T) {
	sm := model.NewServiceModel()
	sm.AddType(&model.TypeDef{Name: "widget", Kind: model.KindComplex})
	sm.AddType(&model.TypeDef{Name: "Widget", Kind: model.KindComplex})

	_, err := Build(sm)
	require.Error(t, err)
	var collision *NameCollision
	assert.ErrorAs(t, err, &collision)
}

func TestBuildPlanUnresolvedTypeReference(t *testing.T) {
	sm := model.NewServiceModel()
	sm.AddType(&model.TypeDef{
		Name: "Thing",
		Kind: model.KindComplex,
		Fields: []model.Field{
			{Name: "other", Type: model.SimpleKind{Tag: model.ComplexRef, Name: "Missing"}},
		},
	})

	_, err := Build(sm)
	require.Error(t, err)
	var unresolved *UnresolvedReference
	assert.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "type", unresolved.Kind)
}

func TestNameNormalization(t *testing.T) {
	assert.Equal(t, "WidgetRecord", upperCamel("widget_record"))
	assert.Equal(t, "WidgetRecord", upperCamel("WidgetRecord"))
	assert.Equal(t, "get_widget", lowerSnake("GetWidget"))
	assert.Equal(t, "widget_id", lowerSnake("widgetID"))
}
