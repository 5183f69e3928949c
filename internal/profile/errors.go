// Package profile loads and validates brand profile documents. A profile
// either loads completely or not at all; evaluators never see a partial one.
package profile

import "fmt"

// NotFoundError indicates the profile source does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Path)
}

// ParseError indicates the profile document is malformed JSON or fails
// schema validation.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load profile: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// VersionError indicates the profile version is not semver-shaped.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("profile version must be semver (e.g. 1.0.0), got %q", e.Version)
}
