package model

import (
	"fmt"

	"github.com/scylladb/go-set/strset"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Bom is the root aggregate of a CycloneDX document, independent of any
// wire format. It is an immutable value type: parsing produces one,
// serialization and validation consume one.
type Bom struct {
	// SpecVersion records which schema revision the document was parsed
	// from, or should be written at by default.
	SpecVersion  spec.Version
	Version      int
	SerialNumber *UrnUUID
	Metadata     *Metadata
	Components   *Components
	Services     *Services
	ExternalReferences ExternalReferences
	Dependencies Dependencies
	Compositions Compositions
	Properties   Properties
	// Vulnerabilities is only written at spec version 1.4 and later.
	Vulnerabilities Vulnerabilities
	// Formulation is only written at spec version 1.5 and later.
	Formulation Formulation
	// Signature is only written at spec version 1.4 and later, and only to
	// JSON documents.
	Signature *Signature
}

// NewBom returns a fresh BOM with a random serial number and version 1.
func NewBom() Bom {
	serialNumber := GenerateUrnUUID()
	return Bom{
		SpecVersion:  spec.V1_5,
		Version:      1,
		SerialNumber: &serialNumber,
	}
}

// Validate checks the document against the spec version recorded on it.
func (b Bom) Validate() validate.Result {
	return b.ValidateVersion(b.SpecVersion)
}

// ValidateVersion checks the document against the given spec version.
func (b Bom) ValidateVersion(version spec.Version) validate.Result {
	return b.validateWithContext(version, validate.NewContext())
}

func (b Bom) validateWithContext(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if b.SerialNumber != nil {
		result = result.Merge(b.SerialNumber.Validate(version, ctx.Extend(validate.Struct("Bom", "serial_number"))))
	}
	if b.Metadata != nil {
		result = result.Merge(b.Metadata.Validate(version, ctx.Extend(validate.Struct("Bom", "metadata"))))
	}
	if b.Components != nil {
		for i, component := range *b.Components {
			result = result.Merge(component.Validate(version, ctx.Extend(validate.Struct("Bom", "components"), validate.Array(i))))
		}
	}
	if b.Services != nil {
		for i, service := range *b.Services {
			result = result.Merge(service.Validate(version, ctx.Extend(validate.Struct("Bom", "services"), validate.Array(i))))
		}
	}
	if len(b.ExternalReferences) > 0 {
		result = result.Merge(b.ExternalReferences.Validate(version, ctx.Extend(validate.Struct("Bom", "external_references"))))
	}
	if len(b.Compositions) > 0 {
		result = result.Merge(b.Compositions.Validate(version, ctx.Extend(validate.Struct("Bom", "compositions"))))
	}
	if len(b.Properties) > 0 {
		result = result.Merge(b.Properties.Validate(version, ctx.Extend(validate.Struct("Bom", "properties"))))
	}
	if len(b.Vulnerabilities) > 0 {
		result = result.Merge(b.Vulnerabilities.Validate(version, ctx.Extend(validate.Struct("Bom", "vulnerabilities"))))
	}
	if len(b.Formulation) > 0 {
		result = result.Merge(b.Formulation.Validate(version, ctx.Extend(validate.Struct("Bom", "formulation"))))
	}
	if b.Signature != nil {
		result = result.Merge(b.Signature.Validate(version, ctx.Extend(validate.Struct("Bom", "signature"))))
	}
	return result.Merge(b.validateBomRefUniqueness(ctx))
}

// validateBomRefUniqueness checks that every bom-ref in the document is
// unique. The check happens only during validation, never at construction.
func (b Bom) validateBomRefUniqueness(ctx validate.Context) validate.Result {
	result := validate.Pass()
	seen := strset.New()
	record := func(ref *string) {
		if ref == nil || *ref == "" {
			return
		}
		if seen.Has(*ref) {
			result = result.Merge(validate.Fail(fmt.Sprintf("Bom ref %q has already been used in the document", *ref), ctx))
			return
		}
		seen.Add(*ref)
	}

	var walkComponents func(components Components)
	walkComponents = func(components Components) {
		for _, component := range components {
			record(component.BomRef)
			if component.Components != nil {
				walkComponents(*component.Components)
			}
		}
	}
	var walkServices func(services Services)
	walkServices = func(services Services) {
		for _, service := range services {
			record(service.BomRef)
			if service.Services != nil {
				walkServices(*service.Services)
			}
		}
	}

	if b.Metadata != nil && b.Metadata.Component != nil {
		walkComponents(Components{*b.Metadata.Component})
	}
	if b.Components != nil {
		walkComponents(*b.Components)
	}
	if b.Services != nil {
		walkServices(*b.Services)
	}
	for _, vulnerability := range b.Vulnerabilities {
		record(vulnerability.BomRef)
	}
	for _, formula := range b.Formulation {
		record(formula.BomRef)
		if formula.Components != nil {
			walkComponents(*formula.Components)
		}
		if formula.Services != nil {
			walkServices(*formula.Services)
		}
	}
	return result
}
