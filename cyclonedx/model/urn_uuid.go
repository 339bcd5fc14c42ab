package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// UrnUUID is a BOM serial number in urn:uuid form.
type UrnUUID string

// NewUrnUUID validates the value as a urn:uuid string.
func NewUrnUUID(value string) (UrnUUID, error) {
	if !strings.HasPrefix(value, "urn:uuid:") {
		return "", fmt.Errorf("%w: missing urn:uuid prefix", ErrInvalidUrnUUID)
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUrnUUID, err)
	}
	return UrnUUID(value), nil
}

// GenerateUrnUUID returns a serial number backed by a fresh random UUID.
func GenerateUrnUUID() UrnUUID {
	return UrnUUID(uuid.New().URN())
}

// UrnUUIDUnchecked preserves a possibly-invalid serial number read from an
// external document. For use by the schema decoding layer only.
func UrnUUIDUnchecked(value string) UrnUUID {
	return UrnUUID(value)
}

func (u UrnUUID) String() string {
	return string(u)
}

func (u UrnUUID) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if _, err := NewUrnUUID(string(u)); err != nil {
		return validate.Fail("UrnUuid does not match the URN specification for UUIDs", ctx)
	}
	return validate.Pass()
}
