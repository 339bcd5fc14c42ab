package model

import (
	"fmt"
	"time"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// DateTime is an RFC 3339 formatted timestamp, stored as the raw string so
// foreign documents round-trip without reformatting.
type DateTime string

// NewDateTime validates the value as RFC 3339.
func NewDateTime(value string) (DateTime, error) {
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	return DateTime(value), nil
}

// DateTimeNow returns the current UTC time as a DateTime.
func DateTimeNow() DateTime {
	return DateTime(time.Now().UTC().Format(time.RFC3339))
}

// DateTimeUnchecked preserves a possibly-invalid timestamp read from an
// external document. For use by the schema decoding layer only.
func DateTimeUnchecked(value string) DateTime {
	return DateTime(value)
}

func (d DateTime) String() string {
	return string(d)
}

func (d DateTime) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if _, err := time.Parse(time.RFC3339, string(d)); err != nil {
		return validate.Fail("DateTime does not conform to RFC 3339", ctx)
	}
	return validate.Pass()
}
