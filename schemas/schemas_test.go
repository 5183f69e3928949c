package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestBrandProfileSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(BrandProfile), &v)
	require.NoError(t, err, "embedded schema should be valid JSON")
}

func TestBrandProfileSchema_Compiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(BrandProfile))
	require.NoError(t, err, "embedded schema should be a valid JSON Schema")
}

func TestBrandProfileSchema_AcceptsMinimalProfile(t *testing.T) {
	doc := `{
		"name": "acme",
		"version": "1.0.0",
		"values": ["innovative"],
		"voiceDescriptors": ["confident"]
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(BrandProfile),
		gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestBrandProfileSchema_Rejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", `{"version":"1.0.0","values":["a"],"voiceDescriptors":["b"]}`},
		{"bad version", `{"name":"x","version":"v1","values":["a"],"voiceDescriptors":["b"]}`},
		{"empty values", `{"name":"x","version":"1.0.0","values":[],"voiceDescriptors":["b"]}`},
		{"missing voice", `{"name":"x","version":"1.0.0","values":["a"]}`},
		{"bad example type", `{"name":"x","version":"1.0.0","values":["a"],"voiceDescriptors":["b"],"examples":[{"content":"c","type":"ugly"}]}`},
		{"unknown field", `{"name":"x","version":"1.0.0","values":["a"],"voiceDescriptors":["b"],"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gojsonschema.Validate(
				gojsonschema.NewStringLoader(BrandProfile),
				gojsonschema.NewStringLoader(tt.doc))
			require.NoError(t, err)
			assert.False(t, result.Valid())
		})
	}
}
