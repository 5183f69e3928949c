// Package schemas holds the JSON Schema documents that define the wire
// contracts of the brand checker, embedded so validation needs no file paths.
package schemas

import _ "embed"

// BrandProfile is the JSON Schema for brand profile documents.
//
//go:embed brand_profile.schema.json
var BrandProfile string
