package model

import (
	"strings"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// NormalizedString is a string that does not contain carriage return, line
// feed, or tab characters, per the XML schema normalizedString type.
type NormalizedString string

var normalizedStringReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// NewNormalizedString replaces any \r\n, \r, \n, and \t sequences with
// single spaces. Applying it twice is a no-op.
func NewNormalizedString(value string) NormalizedString {
	return NormalizedString(normalizedStringReplacer.Replace(value))
}

// NormalizedStringUnchecked preserves the raw value as read from an external
// document, which may contain characters the checked constructor strips.
// For use by the schema decoding layer only.
func NormalizedStringUnchecked(value string) NormalizedString {
	return NormalizedString(value)
}

func (n NormalizedString) String() string {
	return string(n)
}

func (n NormalizedString) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if strings.ContainsAny(string(n), "\r\n\t") {
		return validate.Fail("NormalizedString contains invalid characters \\r \\n \\t or \\r\\n", ctx)
	}
	return validate.Pass()
}
