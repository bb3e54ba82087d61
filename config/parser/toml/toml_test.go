package toml_test

import (
	"testing"

	"github.com/x97mdr/SpecFlow/config/document"
	tomlparser "github.com/x97mdr/SpecFlow/config/parser/toml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Tables(t *testing.T) {
	t.Parallel()

	parser := tomlparser.NewParser()

	data := []byte(`
[language]
feature = "de-AT"

[runtime]
stopAtFirstError = true
missingOrPendingStepsOutcome = "Ignore"
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "config", node.Name)
	require.Len(t, node.Children, 2)

	assert.Equal(t, "language", node.Children[0].Name)
	assert.Equal(t, []document.Attr{{Name: "feature", Value: "de-AT"}}, node.Children[0].Attrs)

	runtime := node.Child("runtime")
	require.NotNil(t, runtime)
	assert.Equal(t, []document.Attr{
		{Name: "missingOrPendingStepsOutcome", Value: "Ignore"},
		{Name: "stopAtFirstError", Value: "true"},
	}, runtime.Attrs)
}

func TestParser_Parse_WithPath(t *testing.T) {
	t.Parallel()

	parser := tomlparser.NewParser(tomlparser.WithPath("tools:specFlow"))

	data := []byte(`
[tools.specFlow.trace]
traceTimings = true
minTracedDuration = "0:0:2"
`)

	node, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "specFlow", node.Name)

	trace := node.Child("trace")
	require.NotNil(t, trace)

	timings, ok := trace.Attr("traceTimings")
	assert.True(t, ok)
	assert.Equal(t, "true", timings)
}

func TestParser_Parse_PathNotFound(t *testing.T) {
	t.Parallel()

	parser := tomlparser.NewParser(tomlparser.WithPath("specFlow"))

	_, err := parser.Parse([]byte("[other]\nkey = 1\n"))

	require.ErrorIs(t, err, document.ErrPathNotFound)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := tomlparser.NewParser()

	_, err := parser.Parse([]byte("# only a comment\n"))
	require.ErrorIs(t, err, document.ErrEmptyDocument)

	_, err = parser.Parse(nil)
	require.ErrorIs(t, err, document.ErrEmptyDocument)
}

func TestParser_Parse_Invalid(t *testing.T) {
	t.Parallel()

	parser := tomlparser.NewParser()

	_, err := parser.Parse([]byte("[language\nfeature = "))
	require.Error(t, err)

	_, err = parser.Parse([]byte("[language]\nfeature = [\"en\", \"de\"]\n"))
	require.Error(t, err)
}
