package profile

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/brand-checker/internal/types"
	"github.com/jonathan/brand-checker/schemas"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Load reads a brand profile from a JSON file and validates it. Returns a
// NotFoundError, ParseError, or VersionError; never a partial profile.
func Load(path string) (*types.BrandProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ParseError{Message: "failed to read " + path, Cause: err}
	}
	return Parse(data)
}

// Parse decodes and validates a brand profile document. Validation runs in
// three passes: JSON well-formedness, schema shape, then the struct-level
// invariants (list bounds, semver version).
func Parse(data []byte) (*types.BrandProfile, error) {
	var p types.BrandProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ParseError{Message: "invalid JSON", Cause: err}
	}

	if !versionPattern.MatchString(p.Version) {
		return nil, &VersionError{Version: p.Version}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.BrandProfile),
		gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &ParseError{Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		var problems []string
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, &ParseError{Message: strings.Join(problems, "; ")}
	}

	// Example type defaults to good when the document omits it.
	for i := range p.Examples {
		if p.Examples[i].Type == "" {
			p.Examples[i].Type = types.ExampleGood
		}
	}

	if err := p.Validate(); err != nil {
		return nil, &ParseError{Message: "profile validation failed", Cause: err}
	}
	return &p, nil
}
