package model

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anchore/packageurl-go"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Uri is an RFC 3986 URI, stored raw.
type Uri string

// NewUri validates the value as an absolute RFC 3986 URI.
func NewUri(value string) (Uri, error) {
	if _, err := url.ParseRequestURI(value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	return Uri(value), nil
}

// UriUnchecked preserves a possibly-invalid URI read from an external
// document. For use by the schema decoding layer only.
func UriUnchecked(value string) Uri {
	return Uri(value)
}

func (u Uri) String() string {
	return string(u)
}

func (u Uri) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if _, err := url.ParseRequestURI(string(u)); err != nil {
		return validate.Fail("Uri does not conform to RFC 3986", ctx)
	}
	return validate.Pass()
}

// Purl is a package URL identifying a software package by ecosystem, name,
// and version.
type Purl string

// NewPurl builds a package URL from its parts, failing if the result does
// not conform to the package URL spec.
func NewPurl(packageType, name, version string) (Purl, error) {
	candidate := packageurl.NewPackageURL(packageType, "", name, version, nil, "").ToString()
	if _, err := packageurl.FromString(candidate); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPurl, err)
	}
	return Purl(candidate), nil
}

// PurlUnchecked preserves a possibly-invalid purl read from an external
// document. For use by the schema decoding layer only.
func PurlUnchecked(value string) Purl {
	return Purl(value)
}

func (p Purl) String() string {
	return string(p)
}

func (p Purl) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if _, err := packageurl.FromString(string(p)); err != nil {
		return validate.Fail(fmt.Sprintf("Purl does not conform to Package URL spec: %v", err), ctx)
	}
	return validate.Pass()
}

// Cpe is a Common Platform Enumeration identifier in URI binding form.
type Cpe string

func (c Cpe) String() string {
	return string(c)
}

func (c Cpe) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !strings.HasPrefix(string(c), "cpe:") {
		return validate.Fail("Cpe does not conform to the CPE specification", ctx)
	}
	return validate.Pass()
}
