package model

import "errors"

// Construction errors raised by the checked constructors. The unchecked
// constructors used by the schema decoding layer never raise these; invalid
// parsed content is surfaced by validation instead.
var (
	ErrInvalidURI               = errors.New("invalid URI")
	ErrInvalidPurl              = errors.New("invalid package URL")
	ErrInvalidEmail             = errors.New("invalid email address")
	ErrInvalidDateTime          = errors.New("invalid RFC 3339 timestamp")
	ErrInvalidUrnUUID           = errors.New("invalid urn:uuid value")
	ErrInvalidLicenseExpression = errors.New("invalid SPDX license expression")
)
