package xmlnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<root xmlns:tns="urn:example">
  <item id="1"><name>widget</name><qty>3</qty></item>
  <item id="2"><name>gadget</name><qty>0</qty></item>
  <flag>true</flag>
  <when>2024-01-02T03:04:05Z</when>
</root>`

func TestParseAndDescend(t *testing.T) {
	root, err := ParseBytes([]byte(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, "root", root.Tag())

	items := root.DescendAll("item")
	require.Len(t, items, 2)

	id, ok := items[0].Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "1", id)

	name, err := items[0].GetAtPath("name")
	require.NoError(t, err)
	s, err := name.AsString()
	require.NoError(t, err)
	assert.Equal(t, "widget", s)

	qty, err := items[1].GetAtPath("qty")
	require.NoError(t, err)
	n, err := qty.AsInt()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDescendMissing(t *testing.T) {
	root, err := ParseBytes([]byte(sampleDoc))
	require.NoError(t, err)

	_, err = root.Descend("nope")
	require.Error(t, err)
	var notFound *ErrNotFoundAtPath
	assert.ErrorAs(t, err, &notFound)

	assert.Nil(t, root.DescendFirst("nope"))

	_, err = root.GetAtPath("item", "missing", "deeper")
	require.Error(t, err)
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"item", "missing"}, notFound.Trace)
}

func TestTypedAccessors(t *testing.T) {
	root, err := ParseBytes([]byte(sampleDoc))
	require.NoError(t, err)

	flag, err := root.GetAtPath("flag")
	require.NoError(t, err)
	b, err := flag.AsBoolean()
	require.NoError(t, err)
	assert.True(t, b)

	when, err := root.GetAtPath("when")
	require.NoError(t, err)
	ts, err := when.AsDateTime()
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
}

func TestTypedAccessorChecksTypeAttribute(t *testing.T) {
	root, err := ParseBytes([]byte(`<root>
		<loginReturn type="xsd:string">a3a8ecc6d5</loginReturn>
		<count type="xsd:string">3</count>
	</root>`))
	require.NoError(t, err)

	ok, err := root.GetAtPath("loginReturn")
	require.NoError(t, err)
	s, err := ok.AsString()
	require.NoError(t, err)
	assert.Equal(t, "a3a8ecc6d5", s)

	mismatched, err := root.GetAtPath("count")
	require.NoError(t, err)
	_, err = mismatched.AsLong()
	require.Error(t, err)
	var expectedType *ErrExpectedType
	require.ErrorAs(t, err, &expectedType)
	assert.Equal(t, "*:long", expectedType.Expected)
	assert.Equal(t, "xsd:string", expectedType.Given)
}

func TestEmptyElementErrors(t *testing.T) {
	root, err := ParseBytes([]byte(`<root><empty/></root>`))
	require.NoError(t, err)

	empty, err := root.GetAtPath("empty")
	require.NoError(t, err)

	_, err = empty.AsString()
	require.Error(t, err)
	var wasEmpty *ErrElementWasEmpty
	assert.ErrorAs(t, err, &wasEmpty)
}

func TestBuilderAndSerialize(t *testing.T) {
	n := New("root").
		WithAttr("xmlns:tns", "urn:example").
		WithChild(New("name").WithText("widget")).
		WithChildrenFunc(2, func(i int) *Node {
			return New("tag").WithAttr("idx", string(rune('0'+i)))
		})

	out, err := Serialize(n)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<root")
	assert.Contains(t, string(out), "<name>widget</name>")

	reparsed, err := ParseBytes(out)
	require.NoError(t, err)
	assert.Len(t, reparsed.DescendAll("tag"), 2)
}
