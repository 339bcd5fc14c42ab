package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Tool describes a tool that produced or contributed to the BOM.
type Tool struct {
	Vendor  *NormalizedString
	Name    *NormalizedString
	Version *NormalizedString
	Hashes  Hashes
	// ExternalReferences is only written at spec version 1.4 and later.
	ExternalReferences ExternalReferences
}

func (t Tool) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if t.Vendor != nil {
		result = result.Merge(t.Vendor.Validate(version, ctx.Extend(validate.Struct("Tool", "vendor"))))
	}
	if t.Name != nil {
		result = result.Merge(t.Name.Validate(version, ctx.Extend(validate.Struct("Tool", "name"))))
	}
	if t.Version != nil {
		result = result.Merge(t.Version.Validate(version, ctx.Extend(validate.Struct("Tool", "version"))))
	}
	if len(t.Hashes) > 0 {
		result = result.Merge(t.Hashes.Validate(version, ctx.Extend(validate.Struct("Tool", "hashes"))))
	}
	if len(t.ExternalReferences) > 0 {
		result = result.Merge(t.ExternalReferences.Validate(version, ctx.Extend(validate.Struct("Tool", "external_references"))))
	}
	return result
}

// Tools is a list of tools.
type Tools []Tool

func (t Tools) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, tool := range t {
		result = result.Merge(tool.Validate(version, ctx.Extend(validate.Struct("Tools", "inner"), validate.Array(i))))
	}
	return result
}
