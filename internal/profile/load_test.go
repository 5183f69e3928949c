package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-checker/internal/types"
)

const validProfileJSON = `{
	"name": "acme",
	"version": "2.1.0",
	"values": ["innovative", "bold"],
	"voiceDescriptors": ["confident"],
	"toneAcceptable": ["friendly"],
	"toneUnacceptable": ["aggressive"],
	"neverRules": ["guaranteed results"],
	"examples": [
		{"content": "Bold ideas, honestly told", "type": "good", "note": "homepage hero"},
		{"content": "Buy now or regret it"}
	],
	"description": "Test profile"
}`

func TestLoad_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfileJSON), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme", p.Name)
	assert.Equal(t, "2.1.0", p.Version)
	assert.Equal(t, []string{"innovative", "bold"}, p.Values)
	assert.Equal(t, []string{"guaranteed results"}, p.NeverRules)
	require.Len(t, p.Examples, 2)
	// Example type defaults to good when omitted.
	assert.Equal(t, types.ExampleGood, p.Examples[1].Type)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_BadVersion(t *testing.T) {
	doc := `{"name":"x","version":"1.0","values":["a"],"voiceDescriptors":["b"]}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var versionErr *VersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "1.0", versionErr.Version)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty values", `{"name":"x","version":"1.0.0","values":[],"voiceDescriptors":["b"]}`},
		{"missing voice descriptors", `{"name":"x","version":"1.0.0","values":["a"]}`},
		{"unknown example type", `{"name":"x","version":"1.0.0","values":["a"],"voiceDescriptors":["b"],"examples":[{"content":"c","type":"meh"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParse_TooManyValues(t *testing.T) {
	doc := `{"name":"x","version":"1.0.0","voiceDescriptors":["b"],"values":[
		"v1","v2","v3","v4","v5","v6","v7","v8","v9","v10",
		"v11","v12","v13","v14","v15","v16","v17","v18","v19","v20","v21"]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}
