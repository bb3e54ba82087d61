package xml

import (
	"testing"

	"github.com/x97mdr/SpecFlow/config/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_SectionElements(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<specFlow>
  <!-- languages -->
  <language feature="de-AT" tool="en"/>
  <runtime stopAtFirstError="true">
    <dependencies/>
  </runtime>
</specFlow>
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "specFlow", node.Name)
	require.Len(t, node.Children, 2)

	language := node.Child("language")
	require.NotNil(t, language)
	assert.Equal(t, []document.Attr{
		{Name: "feature", Value: "de-AT"},
		{Name: "tool", Value: "en"},
	}, language.Attrs)
	assert.Equal(t, 4, language.Position.Line)

	runtime := node.Child("runtime")
	require.NotNil(t, runtime)
	require.Len(t, runtime.Children, 1)
	assert.Equal(t, "dependencies", runtime.Children[0].Name)
	assert.Equal(t, 6, runtime.Children[0].Position.Line)
}

func TestParser_Parse_WithPath(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithPath("specFlow"))

	data := []byte(`
<configuration>
  <appSettings/>
  <specFlow>
    <unitTestProvider name="MsTest"/>
  </specFlow>
</configuration>
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "specFlow", node.Name)

	provider := node.Child("unitTestProvider")
	require.NotNil(t, provider)

	name, ok := provider.Attr("name")
	assert.True(t, ok)
	assert.Equal(t, "MsTest", name)
}

func TestParser_Parse_PathNotFound(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithPath("specFlow"))

	_, err := parser.Parse([]byte(`<configuration><appSettings/></configuration>`))

	require.ErrorIs(t, err, document.ErrPathNotFound)
}

func TestParser_Parse_NamespaceDeclarationsDropped(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	node, err := parser.Parse([]byte(
		`<specFlow xmlns="urn:specflow" xmlns:x="urn:x"><trace x:listener="Custom.Listener"/></specFlow>`,
	))

	require.NoError(t, err)
	assert.Empty(t, node.Attrs)

	trace := node.Child("trace")
	require.NotNil(t, trace)
	assert.Equal(t, []document.Attr{{Name: "listener", Value: "Custom.Listener"}}, trace.Attrs)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte("  \n\t"))
	require.ErrorIs(t, err, document.ErrEmptyDocument)

	_, err = parser.Parse([]byte(`<?xml version="1.0"?><!-- nothing -->`))
	require.ErrorIs(t, err, document.ErrEmptyDocument)
}

func TestParser_Parse_InvalidXML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	testCases := []struct {
		name string
		data string
	}{
		{name: "unclosed element", data: `<specFlow><language feature="en">`},
		{name: "mismatched end", data: `<specFlow></runtime>`},
		{name: "unquoted attribute", data: `<specFlow><language feature=en/></specFlow>`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestParser_Parse_MultipleRoots(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte(`<language/><runtime/>`))

	require.ErrorIs(t, err, ErrMultipleRoots)
}
