package wsdl

import (
	"testing"

	"github.com/netwo-io/wsdlgen/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions name="Widget"
             targetNamespace="urn:widget"
             xmlns:tns="urn:widget"
             xmlns="http://schemas.xmlsoap.org/wsdl/">
  <types>
    <schema targetNamespace="urn:widget">
      <element name="GetWidget">
        <complexType>
          <sequence>
            <element name="id" type="xsd:int" minOccurs="0" maxOccurs="0"/>
          </sequence>
        </complexType>
      </element>
      <complexType name="WidgetRecord">
        <sequence>
          <element name="name" type="xsd:string"/>
          <element name="price" type="xsd:float"/>
          <element name="available" type="xsd:boolean" nillable="true"/>
          <element name="tag" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
        </sequence>
      </complexType>
      <element name="GetWidgetResponse">
        <complexType>
          <sequence>
            <element name="widget" type="tns:WidgetRecord"/>
          </sequence>
        </complexType>
      </element>
      <element name="WidgetFault">
        <complexType>
          <sequence>
            <element name="reason" type="xsd:string"/>
          </sequence>
        </complexType>
      </element>
    </schema>
  </types>

  <message name="GetWidgetRequest">
    <part name="parameters" element="tns:GetWidget"/>
  </message>
  <message name="GetWidgetReply">
    <part name="parameters" element="tns:GetWidgetResponse"/>
  </message>
  <message name="WidgetFaultMessage">
    <part name="parameters" element="tns:WidgetFault"/>
  </message>

  <portType name="WidgetPortType">
    <operation name="GetWidget">
      <input message="tns:GetWidgetRequest"/>
      <output message="tns:GetWidgetReply"/>
      <fault message="tns:WidgetFaultMessage"/>
    </operation>
  </portType>

  <service name="WidgetService">
    <port name="WidgetPort" binding="tns:WidgetBinding">
      <address location="http://example.com/widget"/>
    </port>
  </service>
</definitions>`

func TestParseSampleWSDL(t *testing.T) {
	sm, err := Parse([]byte(sampleWSDL))
	require.NoError(t, err)

	assert.Equal(t, "urn:widget", sm.TargetNamespace)
	assert.Equal(t, "WidgetService", sm.ServiceName)
	assert.Equal(t, "http://example.com/widget", sm.EndpointURL)

	require.Contains(t, sm.Types, "WidgetRecord")
	rec := sm.Types["WidgetRecord"]
	require.Equal(t, model.KindComplex, rec.Kind)
	require.Len(t, rec.Fields, 4)

	assert.Equal(t, "name", rec.Fields[0].Name)
	assert.Equal(t, model.String, rec.Fields[0].Type.Tag)

	assert.Equal(t, "available", rec.Fields[2].Name)
	assert.True(t, rec.Fields[2].Attrs.Nillable)

	tagField := rec.Fields[3]
	assert.True(t, tagField.Attrs.Repeated())
	require.NotNil(t, tagField.Attrs.MaxOccurs)
	assert.True(t, tagField.Attrs.MaxOccurs.Unbounded)

	require.Contains(t, sm.Types, "GetWidget")
	require.Contains(t, sm.Types, "GetWidgetResponse")
	responseType := sm.Types["GetWidgetResponse"]
	require.Len(t, responseType.Fields, 1)
	assert.Equal(t, model.ComplexRef, responseType.Fields[0].Type.Tag)
	assert.Equal(t, "WidgetRecord", responseType.Fields[0].Type.Name)

	require.Contains(t, sm.Messages, "GetWidgetRequest")
	assert.Equal(t, "GetWidget", sm.Messages["GetWidgetRequest"].PartElement)

	require.Contains(t, sm.Operations, "GetWidget")
	op := sm.Operations["GetWidget"]
	assert.Equal(t, "GetWidgetRequest", op.Input)
	assert.Equal(t, "GetWidgetReply", op.Output)
	assert.Equal(t, []string{"WidgetFaultMessage"}, op.Faults)
	assert.Equal(t, model.ShapeRequestResponseWithFaults, op.Shape())
}

func TestParseMissingTypes(t *testing.T) {
	const bad = `<?xml version="1.0"?>
<definitions name="Bad" xmlns="http://schemas.xmlsoap.org/wsdl/">
  <service name="BadService"><port name="p" binding="b"/></service>
</definitions>`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
	var notFound *ErrElementNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "types", notFound.Name)
}

func TestParseBadOccursValue(t *testing.T) {
	const bad = `<?xml version="1.0"?>
<definitions name="Bad" targetNamespace="urn:bad" xmlns="http://schemas.xmlsoap.org/wsdl/">
  <types>
    <schema>
      <complexType name="Thing">
        <sequence>
          <element name="x" type="xsd:int" maxOccurs="lots"/>
        </sequence>
      </complexType>
    </schema>
  </types>
  <message name="M"><part name="p" element="tns:Thing"/></message>
  <portType name="PT"><operation name="Op"><input message="tns:M"/></operation></portType>
  <service name="S"><port name="p" binding="b"/></service>
</definitions>`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
	var parseErr *ErrParse
	assert.ErrorAs(t, err, &parseErr)
}
