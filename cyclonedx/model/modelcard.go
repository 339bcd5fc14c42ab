package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// ModelApproachType is the closed vocabulary of machine learning approaches.
type ModelApproachType string

const (
	ApproachSupervised             ModelApproachType = "supervised"
	ApproachUnsupervised           ModelApproachType = "unsupervised"
	ApproachReinforcementLearning  ModelApproachType = "reinforcement-learning"
	ApproachSemiSupervised         ModelApproachType = "semi-supervised"
	ApproachSelfSupervised         ModelApproachType = "self-supervised"
)

func (m ModelApproachType) WellKnown() bool {
	switch m {
	case ApproachSupervised, ApproachUnsupervised, ApproachReinforcementLearning,
		ApproachSemiSupervised, ApproachSelfSupervised:
		return true
	}
	return false
}

func (m ModelApproachType) String() string {
	return string(m)
}

func (m ModelApproachType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !m.WellKnown() {
		return validate.FailUnknown("ModelApproachType", ctx)
	}
	return validate.Pass()
}

// ModelParameters describes how a machine learning model was built.
type ModelParameters struct {
	Approach           *ModelApproachType
	Task               *NormalizedString
	ArchitectureFamily *NormalizedString
	ModelArchitecture  *NormalizedString
}

func (m ModelParameters) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if m.Approach != nil {
		result = result.Merge(m.Approach.Validate(version, ctx.Extend(validate.Struct("ModelParameters", "approach"))))
	}
	if m.Task != nil {
		result = result.Merge(m.Task.Validate(version, ctx.Extend(validate.Struct("ModelParameters", "task"))))
	}
	if m.ArchitectureFamily != nil {
		result = result.Merge(m.ArchitectureFamily.Validate(version, ctx.Extend(validate.Struct("ModelParameters", "architecture_family"))))
	}
	if m.ModelArchitecture != nil {
		result = result.Merge(m.ModelArchitecture.Validate(version, ctx.Extend(validate.Struct("ModelParameters", "model_architecture"))))
	}
	return result
}

// ModelCard describes a machine-learning-model component. Only written at
// spec version 1.5 and later.
type ModelCard struct {
	BomRef          *string
	ModelParameters *ModelParameters
	Properties      Properties
}

func (m ModelCard) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if m.ModelParameters != nil {
		result = result.Merge(m.ModelParameters.Validate(version, ctx.Extend(validate.Struct("ModelCard", "model_parameters"))))
	}
	if len(m.Properties) > 0 {
		result = result.Merge(m.Properties.Validate(version, ctx.Extend(validate.Struct("ModelCard", "properties"))))
	}
	return result
}

// ComponentDataType is the closed vocabulary of data component kinds.
type ComponentDataType string

const (
	DataTypeSourceCode    ComponentDataType = "source-code"
	DataTypeConfiguration ComponentDataType = "configuration"
	DataTypeDataset       ComponentDataType = "dataset"
	DataTypeDefinition    ComponentDataType = "definition"
	DataTypeOther         ComponentDataType = "other"
)

func (c ComponentDataType) WellKnown() bool {
	switch c {
	case DataTypeSourceCode, DataTypeConfiguration, DataTypeDataset, DataTypeDefinition, DataTypeOther:
		return true
	}
	return false
}

func (c ComponentDataType) String() string {
	return string(c)
}

func (c ComponentDataType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !c.WellKnown() {
		return validate.FailUnknown("ComponentDataType", ctx)
	}
	return validate.Pass()
}

// DataContents carries the data inline or by URL.
type DataContents struct {
	Attachment *AttachedText
	URL        *Uri
	Properties Properties
}

func (d DataContents) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if d.Attachment != nil {
		result = result.Merge(d.Attachment.Validate(version, ctx.Extend(validate.Struct("DataContents", "attachment"))))
	}
	if d.URL != nil {
		result = result.Merge(d.URL.Validate(version, ctx.Extend(validate.Struct("DataContents", "url"))))
	}
	return result
}

// DataGovernanceResponsibleParty is either an organization or a contact.
type DataGovernanceResponsibleParty struct {
	Organization *OrganizationalEntity
	Contact      *OrganizationalContact
}

func (d DataGovernanceResponsibleParty) Validate(version spec.Version, ctx validate.Context) validate.Result {
	switch {
	case d.Organization != nil:
		return d.Organization.Validate(version, ctx.Extend(validate.Struct("DataGovernanceResponsibleParty", "organization")))
	case d.Contact != nil:
		return d.Contact.Validate(version, ctx.Extend(validate.Struct("DataGovernanceResponsibleParty", "contact")))
	}
	return validate.Pass()
}

// DataGovernance names the custodians, stewards, and owners of a data
// component.
type DataGovernance struct {
	Custodians []DataGovernanceResponsibleParty
	Stewards   []DataGovernanceResponsibleParty
	Owners     []DataGovernanceResponsibleParty
}

func (d DataGovernance) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, party := range d.Custodians {
		result = result.Merge(party.Validate(version, ctx.Extend(validate.Struct("DataGovernance", "custodians"), validate.Array(i))))
	}
	for i, party := range d.Stewards {
		result = result.Merge(party.Validate(version, ctx.Extend(validate.Struct("DataGovernance", "stewards"), validate.Array(i))))
	}
	for i, party := range d.Owners {
		result = result.Merge(party.Validate(version, ctx.Extend(validate.Struct("DataGovernance", "owners"), validate.Array(i))))
	}
	return result
}

// ComponentData describes a data component. Only written at spec version
// 1.5 and later.
type ComponentData struct {
	BomRef         *string
	DataType       ComponentDataType
	Name           *NormalizedString
	Contents       *DataContents
	Classification *NormalizedString
	SensitiveData  []NormalizedString
	Description    *NormalizedString
	Governance     *DataGovernance
}

func (c ComponentData) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := c.DataType.Validate(version, ctx.Extend(validate.Struct("ComponentData", "data_type")))
	if c.Name != nil {
		result = result.Merge(c.Name.Validate(version, ctx.Extend(validate.Struct("ComponentData", "name"))))
	}
	if c.Contents != nil {
		result = result.Merge(c.Contents.Validate(version, ctx.Extend(validate.Struct("ComponentData", "contents"))))
	}
	if c.Classification != nil {
		result = result.Merge(c.Classification.Validate(version, ctx.Extend(validate.Struct("ComponentData", "classification"))))
	}
	for i, s := range c.SensitiveData {
		result = result.Merge(s.Validate(version, ctx.Extend(validate.Struct("ComponentData", "sensitive_data"), validate.Array(i))))
	}
	if c.Description != nil {
		result = result.Merge(c.Description.Validate(version, ctx.Extend(validate.Struct("ComponentData", "description"))))
	}
	if c.Governance != nil {
		result = result.Merge(c.Governance.Validate(version, ctx.Extend(validate.Struct("ComponentData", "governance"))))
	}
	return result
}
