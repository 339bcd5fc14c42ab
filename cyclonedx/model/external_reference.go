package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// ExternalReferenceType is the closed vocabulary of external reference
// kinds. Values outside the vocabulary are preserved verbatim and flagged
// during validation.
type ExternalReferenceType string

const (
	ExternalReferenceVcs           ExternalReferenceType = "vcs"
	ExternalReferenceIssueTracker  ExternalReferenceType = "issue-tracker"
	ExternalReferenceWebsite       ExternalReferenceType = "website"
	ExternalReferenceAdvisories    ExternalReferenceType = "advisories"
	ExternalReferenceBom           ExternalReferenceType = "bom"
	ExternalReferenceMailingList   ExternalReferenceType = "mailing-list"
	ExternalReferenceSocial        ExternalReferenceType = "social"
	ExternalReferenceChat          ExternalReferenceType = "chat"
	ExternalReferenceDocumentation ExternalReferenceType = "documentation"
	ExternalReferenceSupport       ExternalReferenceType = "support"
	ExternalReferenceDistribution  ExternalReferenceType = "distribution"
	ExternalReferenceLicense       ExternalReferenceType = "license"
	ExternalReferenceBuildMeta     ExternalReferenceType = "build-meta"
	ExternalReferenceBuildSystem   ExternalReferenceType = "build-system"
	ExternalReferenceReleaseNotes  ExternalReferenceType = "release-notes"
	ExternalReferenceOther         ExternalReferenceType = "other"

	// added in 1.5
	ExternalReferenceDistributionIntake ExternalReferenceType = "distribution-intake"
	ExternalReferenceSecurityContact    ExternalReferenceType = "security-contact"
	ExternalReferenceModelCard          ExternalReferenceType = "model-card"
	ExternalReferenceLog                ExternalReferenceType = "log"
	ExternalReferenceConfiguration      ExternalReferenceType = "configuration"
	ExternalReferenceEvidence           ExternalReferenceType = "evidence"
	ExternalReferenceFormulation        ExternalReferenceType = "formulation"
	ExternalReferenceAttestation        ExternalReferenceType = "attestation"
	ExternalReferenceThreatModel        ExternalReferenceType = "threat-model"
	ExternalReferenceAdversaryModel     ExternalReferenceType = "adversary-model"
	ExternalReferenceRiskAssessment     ExternalReferenceType = "risk-assessment"
)

var wellKnownExternalReferenceTypes = map[ExternalReferenceType]struct{}{
	ExternalReferenceVcs:                {},
	ExternalReferenceIssueTracker:       {},
	ExternalReferenceWebsite:            {},
	ExternalReferenceAdvisories:         {},
	ExternalReferenceBom:                {},
	ExternalReferenceMailingList:        {},
	ExternalReferenceSocial:             {},
	ExternalReferenceChat:               {},
	ExternalReferenceDocumentation:      {},
	ExternalReferenceSupport:            {},
	ExternalReferenceDistribution:       {},
	ExternalReferenceLicense:            {},
	ExternalReferenceBuildMeta:          {},
	ExternalReferenceBuildSystem:        {},
	ExternalReferenceReleaseNotes:       {},
	ExternalReferenceOther:              {},
	ExternalReferenceDistributionIntake: {},
	ExternalReferenceSecurityContact:    {},
	ExternalReferenceModelCard:          {},
	ExternalReferenceLog:                {},
	ExternalReferenceConfiguration:      {},
	ExternalReferenceEvidence:           {},
	ExternalReferenceFormulation:        {},
	ExternalReferenceAttestation:        {},
	ExternalReferenceThreatModel:        {},
	ExternalReferenceAdversaryModel:     {},
	ExternalReferenceRiskAssessment:     {},
}

func (e ExternalReferenceType) WellKnown() bool {
	_, ok := wellKnownExternalReferenceTypes[e]
	return ok
}

func (e ExternalReferenceType) String() string {
	return string(e)
}

func (e ExternalReferenceType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !e.WellKnown() {
		return validate.FailUnknown("ExternalReferenceType", ctx)
	}
	return validate.Pass()
}

// ExternalReference points at a resource outside the BOM document.
type ExternalReference struct {
	Type    ExternalReferenceType
	URL     Uri
	Comment *NormalizedString
	Hashes  Hashes
}

func (e ExternalReference) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := e.Type.Validate(version, ctx.Extend(validate.Struct("ExternalReference", "external_reference_type")))
	result = result.Merge(e.URL.Validate(version, ctx.Extend(validate.Struct("ExternalReference", "url"))))
	if e.Comment != nil {
		result = result.Merge(e.Comment.Validate(version, ctx.Extend(validate.Struct("ExternalReference", "comment"))))
	}
	if len(e.Hashes) > 0 {
		result = result.Merge(e.Hashes.Validate(version, ctx.Extend(validate.Struct("ExternalReference", "hashes"))))
	}
	return result
}

// ExternalReferences is a list of external references.
type ExternalReferences []ExternalReference

func (e ExternalReferences) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, ref := range e {
		result = result.Merge(ref.Validate(version, ctx.Extend(validate.Struct("ExternalReferences", "inner"), validate.Array(i))))
	}
	return result
}
