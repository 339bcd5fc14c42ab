package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// LifecyclePhase is the closed vocabulary of predefined lifecycle phases
// introduced in 1.5.
type LifecyclePhase string

const (
	LifecycleDesign       LifecyclePhase = "design"
	LifecyclePreBuild     LifecyclePhase = "pre-build"
	LifecycleBuild        LifecyclePhase = "build"
	LifecyclePostBuild    LifecyclePhase = "post-build"
	LifecycleOperations   LifecyclePhase = "operations"
	LifecycleDiscovery    LifecyclePhase = "discovery"
	LifecycleDecommission LifecyclePhase = "decommission"
)

func (l LifecyclePhase) WellKnown() bool {
	switch l {
	case LifecycleDesign, LifecyclePreBuild, LifecycleBuild, LifecyclePostBuild,
		LifecycleOperations, LifecycleDiscovery, LifecycleDecommission:
		return true
	}
	return false
}

func (l LifecyclePhase) String() string {
	return string(l)
}

func (l LifecyclePhase) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !l.WellKnown() {
		return validate.FailUnknown("LifecyclePhase", ctx)
	}
	return validate.Pass()
}

// Lifecycle is either a predefined phase or a named custom phase.
type Lifecycle struct {
	Phase       *LifecyclePhase
	Name        *NormalizedString
	Description *NormalizedString
}

func (l Lifecycle) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if l.Phase != nil {
		result = result.Merge(l.Phase.Validate(version, ctx.Extend(validate.Struct("Lifecycle", "phase"))))
	}
	if l.Name != nil {
		result = result.Merge(l.Name.Validate(version, ctx.Extend(validate.Struct("Lifecycle", "name"))))
	}
	if l.Description != nil {
		result = result.Merge(l.Description.Validate(version, ctx.Extend(validate.Struct("Lifecycle", "description"))))
	}
	return result
}

// Metadata describes the BOM document itself.
type Metadata struct {
	Timestamp *DateTime
	// Lifecycles is only written at spec version 1.5 and later.
	Lifecycles  []Lifecycle
	Tools       Tools
	Authors     []OrganizationalContact
	Component   *Component
	Manufacture *OrganizationalEntity
	Supplier    *OrganizationalEntity
	Licenses    Licenses
	Properties  Properties
}

// NewMetadata returns metadata stamped with the current time.
func NewMetadata() Metadata {
	now := DateTimeNow()
	return Metadata{Timestamp: &now}
}

func (m Metadata) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if m.Timestamp != nil {
		result = result.Merge(m.Timestamp.Validate(version, ctx.Extend(validate.Struct("Metadata", "timestamp"))))
	}
	for i, lifecycle := range m.Lifecycles {
		result = result.Merge(lifecycle.Validate(version, ctx.Extend(validate.Struct("Metadata", "lifecycles"), validate.Array(i))))
	}
	if len(m.Tools) > 0 {
		result = result.Merge(m.Tools.Validate(version, ctx.Extend(validate.Struct("Metadata", "tools"))))
	}
	for i, author := range m.Authors {
		result = result.Merge(author.Validate(version, ctx.Extend(validate.Struct("Metadata", "authors"), validate.Array(i))))
	}
	if m.Component != nil {
		result = result.Merge(m.Component.Validate(version, ctx.Extend(validate.Struct("Metadata", "component"))))
	}
	if m.Manufacture != nil {
		result = result.Merge(m.Manufacture.Validate(version, ctx.Extend(validate.Struct("Metadata", "manufacture"))))
	}
	if m.Supplier != nil {
		result = result.Merge(m.Supplier.Validate(version, ctx.Extend(validate.Struct("Metadata", "supplier"))))
	}
	if len(m.Licenses) > 0 {
		result = result.Merge(m.Licenses.Validate(version, ctx.Extend(validate.Struct("Metadata", "licenses"))))
	}
	if len(m.Properties) > 0 {
		result = result.Merge(m.Properties.Validate(version, ctx.Extend(validate.Struct("Metadata", "properties"))))
	}
	return result
}
