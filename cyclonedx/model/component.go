package model

import (
	"regexp"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Classification is the closed vocabulary of component types. Values
// outside the vocabulary are preserved verbatim and flagged during
// validation.
type Classification string

const (
	ClassificationApplication     Classification = "application"
	ClassificationFramework       Classification = "framework"
	ClassificationLibrary         Classification = "library"
	ClassificationContainer       Classification = "container"
	ClassificationOperatingSystem Classification = "operating-system"
	ClassificationDevice          Classification = "device"
	ClassificationFirmware        Classification = "firmware"
	ClassificationFile            Classification = "file"

	// added in 1.5
	ClassificationPlatform             Classification = "platform"
	ClassificationDeviceDriver         Classification = "device-driver"
	ClassificationMachineLearningModel Classification = "machine-learning-model"
	ClassificationData                 Classification = "data"
)

func (c Classification) WellKnown() bool {
	switch c {
	case ClassificationApplication, ClassificationFramework, ClassificationLibrary,
		ClassificationContainer, ClassificationOperatingSystem, ClassificationDevice,
		ClassificationFirmware, ClassificationFile, ClassificationPlatform,
		ClassificationDeviceDriver, ClassificationMachineLearningModel, ClassificationData:
		return true
	}
	return false
}

func (c Classification) String() string {
	return string(c)
}

func (c Classification) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !c.WellKnown() {
		return validate.FailUnknown("Classification", ctx)
	}
	return validate.Pass()
}

// Scope is the closed vocabulary of component scopes.
type Scope string

const (
	ScopeRequired Scope = "required"
	ScopeOptional Scope = "optional"
	ScopeExcluded Scope = "excluded"
)

func (s Scope) WellKnown() bool {
	switch s {
	case ScopeRequired, ScopeOptional, ScopeExcluded:
		return true
	}
	return false
}

func (s Scope) String() string {
	return string(s)
}

func (s Scope) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !s.WellKnown() {
		return validate.FailUnknown("Scope", ctx)
	}
	return validate.Pass()
}

var mimeTypePattern = regexp.MustCompile(`^[-+a-z0-9.]+/[-+a-z0-9.]+$`)

// MimeType is an IANA media type string.
type MimeType string

func (m MimeType) String() string {
	return string(m)
}

func (m MimeType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !mimeTypePattern.MatchString(string(m)) {
		return validate.Fail("MimeType does not match the mime type format", ctx)
	}
	return validate.Pass()
}

// Swid is a SWID tag reference.
type Swid struct {
	TagID      string
	Name       string
	Version    *string
	TagVersion *int
	Patch      *bool
	Text       *AttachedText
	URL        *Uri
}

func (s Swid) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if s.Text != nil {
		result = result.Merge(s.Text.Validate(version, ctx.Extend(validate.Struct("Swid", "text"))))
	}
	if s.URL != nil {
		result = result.Merge(s.URL.Validate(version, ctx.Extend(validate.Struct("Swid", "url"))))
	}
	return result
}

// Pedigree records a component's ancestry and modification history.
type Pedigree struct {
	Ancestors   *Components
	Descendants *Components
	Variants    *Components
	Commits     Commits
	Patches     Patches
	Notes       *NormalizedString
}

func (p Pedigree) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if p.Ancestors != nil {
		result = result.Merge(p.Ancestors.Validate(version, ctx.Extend(validate.Struct("Pedigree", "ancestors"))))
	}
	if p.Descendants != nil {
		result = result.Merge(p.Descendants.Validate(version, ctx.Extend(validate.Struct("Pedigree", "descendants"))))
	}
	if p.Variants != nil {
		result = result.Merge(p.Variants.Validate(version, ctx.Extend(validate.Struct("Pedigree", "variants"))))
	}
	if len(p.Commits) > 0 {
		result = result.Merge(p.Commits.Validate(version, ctx.Extend(validate.Struct("Pedigree", "commits"))))
	}
	if len(p.Patches) > 0 {
		result = result.Merge(p.Patches.Validate(version, ctx.Extend(validate.Struct("Pedigree", "patches"))))
	}
	if p.Notes != nil {
		result = result.Merge(p.Notes.Validate(version, ctx.Extend(validate.Struct("Pedigree", "notes"))))
	}
	return result
}

// Copyright is a single copyright statement in component evidence.
type Copyright struct {
	Text string
}

// ComponentEvidence carries license and copyright evidence gathered for a
// component.
type ComponentEvidence struct {
	Licenses  Licenses
	Copyright []Copyright
}

func (e ComponentEvidence) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if len(e.Licenses) > 0 {
		result = result.Merge(e.Licenses.Validate(version, ctx.Extend(validate.Struct("ComponentEvidence", "licenses"))))
	}
	return result
}

// Component is a node in the (possibly recursive) component tree.
type Component struct {
	ComponentType      Classification
	MimeType           *MimeType
	BomRef             *string
	Supplier           *OrganizationalEntity
	Author             *NormalizedString
	Publisher          *NormalizedString
	Group              *NormalizedString
	Name               NormalizedString
	Version            NormalizedString
	Description        *NormalizedString
	Scope              *Scope
	Hashes             Hashes
	Licenses           Licenses
	Copyright          *NormalizedString
	Cpe                *Cpe
	Purl               *Purl
	Swid               *Swid
	Modified           *bool
	Pedigree           *Pedigree
	ExternalReferences ExternalReferences
	Properties         Properties
	Components         *Components
	Evidence           *ComponentEvidence
	// Signature is only written at spec version 1.4 and later, and only to
	// JSON documents.
	Signature *Signature
	// ModelCard and Data are only written at spec version 1.5 and later.
	ModelCard *ModelCard
	Data      *ComponentData
}

// NewComponent returns a component of the given type with the mandatory
// name and version normalized.
func NewComponent(componentType Classification, name, version string) Component {
	return Component{
		ComponentType: componentType,
		Name:          NewNormalizedString(name),
		Version:       NewNormalizedString(version),
	}
}

func (c Component) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := c.ComponentType.Validate(version, ctx.Extend(validate.Struct("Component", "component_type")))
	if c.MimeType != nil {
		result = result.Merge(c.MimeType.Validate(version, ctx.Extend(validate.Struct("Component", "mime_type"))))
	}
	if c.Supplier != nil {
		result = result.Merge(c.Supplier.Validate(version, ctx.Extend(validate.Struct("Component", "supplier"))))
	}
	if c.Author != nil {
		result = result.Merge(c.Author.Validate(version, ctx.Extend(validate.Struct("Component", "author"))))
	}
	if c.Publisher != nil {
		result = result.Merge(c.Publisher.Validate(version, ctx.Extend(validate.Struct("Component", "publisher"))))
	}
	if c.Group != nil {
		result = result.Merge(c.Group.Validate(version, ctx.Extend(validate.Struct("Component", "group"))))
	}
	result = result.Merge(c.Name.Validate(version, ctx.Extend(validate.Struct("Component", "name"))))
	result = result.Merge(c.Version.Validate(version, ctx.Extend(validate.Struct("Component", "version"))))
	if c.Description != nil {
		result = result.Merge(c.Description.Validate(version, ctx.Extend(validate.Struct("Component", "description"))))
	}
	if c.Scope != nil {
		result = result.Merge(c.Scope.Validate(version, ctx.Extend(validate.Struct("Component", "scope"))))
	}
	if len(c.Hashes) > 0 {
		result = result.Merge(c.Hashes.Validate(version, ctx.Extend(validate.Struct("Component", "hashes"))))
	}
	if len(c.Licenses) > 0 {
		result = result.Merge(c.Licenses.Validate(version, ctx.Extend(validate.Struct("Component", "licenses"))))
	}
	if c.Copyright != nil {
		result = result.Merge(c.Copyright.Validate(version, ctx.Extend(validate.Struct("Component", "copyright"))))
	}
	if c.Cpe != nil {
		result = result.Merge(c.Cpe.Validate(version, ctx.Extend(validate.Struct("Component", "cpe"))))
	}
	if c.Purl != nil {
		result = result.Merge(c.Purl.Validate(version, ctx.Extend(validate.Struct("Component", "purl"))))
	}
	if c.Swid != nil {
		result = result.Merge(c.Swid.Validate(version, ctx.Extend(validate.Struct("Component", "swid"))))
	}
	if c.Pedigree != nil {
		result = result.Merge(c.Pedigree.Validate(version, ctx.Extend(validate.Struct("Component", "pedigree"))))
	}
	if len(c.ExternalReferences) > 0 {
		result = result.Merge(c.ExternalReferences.Validate(version, ctx.Extend(validate.Struct("Component", "external_references"))))
	}
	if len(c.Properties) > 0 {
		result = result.Merge(c.Properties.Validate(version, ctx.Extend(validate.Struct("Component", "properties"))))
	}
	if c.Components != nil {
		result = result.Merge(c.Components.Validate(version, ctx.Extend(validate.Struct("Component", "components"))))
	}
	if c.Evidence != nil {
		result = result.Merge(c.Evidence.Validate(version, ctx.Extend(validate.Struct("Component", "evidence"))))
	}
	if c.Signature != nil {
		result = result.Merge(c.Signature.Validate(version, ctx.Extend(validate.Struct("Component", "signature"))))
	}
	if c.ModelCard != nil {
		result = result.Merge(c.ModelCard.Validate(version, ctx.Extend(validate.Struct("Component", "model_card"))))
	}
	if c.Data != nil {
		result = result.Merge(c.Data.Validate(version, ctx.Extend(validate.Struct("Component", "data"))))
	}
	return result
}

// Components is a list of components.
type Components []Component

func (c Components) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, component := range c {
		result = result.Merge(component.Validate(version, ctx.Extend(validate.Struct("Components", "inner"), validate.Array(i))))
	}
	return result
}
