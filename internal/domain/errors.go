package domain

import (
	"errors"
	"fmt"
)

// Validation reasons carried by MalformedVersionError.
const (
	reasonTooFewComponents = "fewer than three numeric components"
	reasonRoundTrip        = "input did not round-trip to the same canonical string"
)

var (
	errPrereleaseCharset     = errors.New("prerelease identifier contains disallowed characters")
	errPrereleaseLeadingZero = errors.New("prerelease numeric identifier has a leading zero")
	errBuildCharset          = errors.New("build identifier contains disallowed characters")
)

// MalformedVersionError reports an input or field that violates the semantic
// version grammar. Field is set when a single component failed validation in
// NewVersionFromParts; otherwise Input holds the complete offending string.
type MalformedVersionError struct {
	Input  string
	Field  string
	Reason string
}

func (e *MalformedVersionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed version %s %q: %s", e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("malformed version %q: %s", e.Input, e.Reason)
}
