package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// DataFlowType is the closed vocabulary of service data flow directions.
type DataFlowType string

const (
	DataFlowInbound       DataFlowType = "inbound"
	DataFlowOutbound      DataFlowType = "outbound"
	DataFlowBiDirectional DataFlowType = "bi-directional"
	DataFlowUnknown       DataFlowType = "unknown"
)

func (d DataFlowType) WellKnown() bool {
	switch d {
	case DataFlowInbound, DataFlowOutbound, DataFlowBiDirectional, DataFlowUnknown:
		return true
	}
	return false
}

func (d DataFlowType) String() string {
	return string(d)
}

func (d DataFlowType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !d.WellKnown() {
		return validate.FailUnknown("DataFlowType", ctx)
	}
	return validate.Pass()
}

// DataClassification pairs a flow direction with a classification label.
type DataClassification struct {
	Flow           DataFlowType
	Classification NormalizedString
}

func (d DataClassification) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := d.Flow.Validate(version, ctx.Extend(validate.Struct("DataClassification", "flow")))
	return result.Merge(d.Classification.Validate(version, ctx.Extend(validate.Struct("DataClassification", "classification"))))
}

// Service is a node in the (possibly recursive) service tree.
type Service struct {
	BomRef             *string
	Provider           *OrganizationalEntity
	Group              *NormalizedString
	Name               NormalizedString
	Version            *NormalizedString
	Description        *NormalizedString
	Endpoints          []Uri
	Authenticated      *bool
	XTrustBoundary     *bool
	Data               []DataClassification
	Licenses           Licenses
	ExternalReferences ExternalReferences
	Properties         Properties
	Services           *Services
	// Signature is only written at spec version 1.4 and later, and only to
	// JSON documents.
	Signature *Signature
}

func (s Service) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if s.Provider != nil {
		result = result.Merge(s.Provider.Validate(version, ctx.Extend(validate.Struct("Service", "provider"))))
	}
	if s.Group != nil {
		result = result.Merge(s.Group.Validate(version, ctx.Extend(validate.Struct("Service", "group"))))
	}
	result = result.Merge(s.Name.Validate(version, ctx.Extend(validate.Struct("Service", "name"))))
	if s.Version != nil {
		result = result.Merge(s.Version.Validate(version, ctx.Extend(validate.Struct("Service", "version"))))
	}
	if s.Description != nil {
		result = result.Merge(s.Description.Validate(version, ctx.Extend(validate.Struct("Service", "description"))))
	}
	for i, endpoint := range s.Endpoints {
		result = result.Merge(endpoint.Validate(version, ctx.Extend(validate.Struct("Service", "endpoints"), validate.Array(i))))
	}
	for i, data := range s.Data {
		result = result.Merge(data.Validate(version, ctx.Extend(validate.Struct("Service", "data"), validate.Array(i))))
	}
	if len(s.Licenses) > 0 {
		result = result.Merge(s.Licenses.Validate(version, ctx.Extend(validate.Struct("Service", "licenses"))))
	}
	if len(s.ExternalReferences) > 0 {
		result = result.Merge(s.ExternalReferences.Validate(version, ctx.Extend(validate.Struct("Service", "external_references"))))
	}
	if len(s.Properties) > 0 {
		result = result.Merge(s.Properties.Validate(version, ctx.Extend(validate.Struct("Service", "properties"))))
	}
	if s.Services != nil {
		result = result.Merge(s.Services.Validate(version, ctx.Extend(validate.Struct("Service", "services"))))
	}
	if s.Signature != nil {
		result = result.Merge(s.Signature.Validate(version, ctx.Extend(validate.Struct("Service", "signature"))))
	}
	return result
}

// Services is a list of services.
type Services []Service

func (s Services) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, service := range s {
		result = result.Merge(service.Validate(version, ctx.Extend(validate.Struct("Services", "inner"), validate.Array(i))))
	}
	return result
}
