package yaml

import (
	"testing"

	"github.com/x97mdr/SpecFlow/config/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
language:
  feature: de-AT
runtime:
  stopAtFirstError: true
  missingOrPendingStepsOutcome: Error
trace:
  minTracedDuration: "0:0:1"
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "config", node.Name)
	require.Len(t, node.Children, 3)

	language := node.Child("language")
	require.NotNil(t, language)
	assert.Equal(t, []document.Attr{{Name: "feature", Value: "de-AT"}}, language.Attrs)
	assert.Equal(t, 2, language.Position.Line)

	runtime := node.Child("runtime")
	require.NotNil(t, runtime)
	assert.Equal(t, []document.Attr{
		{Name: "stopAtFirstError", Value: "true"},
		{Name: "missingOrPendingStepsOutcome", Value: "Error"},
	}, runtime.Attrs)

	trace := node.Child("trace")
	require.NotNil(t, trace)

	duration, ok := trace.Attr("minTracedDuration")
	assert.True(t, ok)
	assert.Equal(t, "0:0:1", duration)
}

func TestParser_Parse_MultiLevelPath(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithPath("tools:specFlow"))

	data := []byte(`
tools:
  lint:
    enabled: true
  specFlow:
    unitTestProvider:
      name: xUnit
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "specFlow", node.Name)

	provider := node.Child("unitTestProvider")
	require.NotNil(t, provider)

	name, ok := provider.Attr("name")
	assert.True(t, ok)
	assert.Equal(t, "xUnit", name)
}

func TestParser_Parse_NonExistentKey(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithPath("nonexistent"))

	data := []byte(`
language:
  feature: en
`)

	_, err := parser.Parse(data)

	require.ErrorIs(t, err, document.ErrPathNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestParser_Parse_NullValuesAreAbsent(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
generator:
trace:
  listener: ~
  traceTimings: yes
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Nil(t, node.Child("generator"))

	trace := node.Child("trace")
	require.NotNil(t, trace)

	_, ok := trace.Attr("listener")
	assert.False(t, ok)
}

func TestParser_Parse_AnchorsAreResolved(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
language: &lang
  feature: fr-CA
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)

	language := node.Child("language")
	require.NotNil(t, language)

	feature, ok := language.Attr("feature")
	assert.True(t, ok)
	assert.Equal(t, "fr-CA", feature)
}

func TestParser_Parse_SequenceRejected(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
language:
  feature:
    - en
    - de
`)

	_, err := parser.Parse(data)

	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestParser_Parse_NonMappingRoot(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte(`just a string`))

	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte{})

	require.ErrorIs(t, err, document.ErrEmptyDocument)
}

func TestParser_Parse_CommentsOnly(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	node, err := parser.Parse([]byte("# specflow settings\n# nothing configured yet\n"))
	if err != nil {
		require.ErrorIs(t, err, document.ErrEmptyDocument)

		return
	}

	require.Empty(t, node.Children)
	require.Empty(t, node.Attrs)
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	_, err := parser.Parse(data)

	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "key",
			expected: "$.key",
		},
		{
			name:     "two level path",
			input:    "tools:specFlow",
			expected: "$.tools.specFlow",
		},
		{
			name:     "three level path",
			input:    "build:tools:specFlow",
			expected: "$.build.tools.specFlow",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := convertToYAMLPath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
