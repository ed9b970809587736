package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

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
            <element name="id" type="xsd:int"/>
          </sequence>
        </complexType>
      </element>
      <complexType name="WidgetRecord">
        <sequence>
          <element name="name" type="xsd:string"/>
          <element name="price" type="xsd:float"/>
        </sequence>
      </complexType>
      <element name="GetWidgetResponse">
        <complexType>
          <sequence>
            <element name="widget" type="tns:WidgetRecord"/>
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

  <portType name="WidgetPortType">
    <operation name="GetWidget">
      <input message="tns:GetWidgetRequest"/>
      <output message="tns:GetWidgetReply"/>
    </operation>
  </portType>

  <service name="WidgetService">
    <port name="WidgetPort" binding="tns:WidgetBinding">
      <address location="http://example.com/widget"/>
    </port>
  </service>
</definitions>`

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "widget.wsdl")
	require.NoError(t, os.WriteFile(src, []byte(sampleWSDL), 0644))

	var buf bytes.Buffer
	err := Generate(&buf, Options{Src: src, PackageName: "widget"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "package widget")
	assert.Contains(t, out, "func (c *Client) GetWidget(")
}

func TestGenerateMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, Options{Src: filepath.Join(t.TempDir(), "missing.wsdl")})
	require.Error(t, err)
}
