package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Severity is the closed vocabulary of qualitative vulnerability severities.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
	SeverityNone     Severity = "none"
	SeverityUnknown  Severity = "unknown"
)

func (s Severity) WellKnown() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow,
		SeverityInfo, SeverityNone, SeverityUnknown:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !s.WellKnown() {
		return validate.FailUnknown("Severity", ctx)
	}
	return validate.Pass()
}

// ScoreMethod is the closed vocabulary of vulnerability scoring systems.
type ScoreMethod string

const (
	ScoreMethodCVSSv2  ScoreMethod = "CVSSv2"
	ScoreMethodCVSSv3  ScoreMethod = "CVSSv3"
	ScoreMethodCVSSv31 ScoreMethod = "CVSSv31"
	ScoreMethodOWASP   ScoreMethod = "OWASP"
	ScoreMethodOther   ScoreMethod = "other"
)

func (s ScoreMethod) WellKnown() bool {
	switch s {
	case ScoreMethodCVSSv2, ScoreMethodCVSSv3, ScoreMethodCVSSv31, ScoreMethodOWASP, ScoreMethodOther:
		return true
	}
	return false
}

func (s ScoreMethod) String() string {
	return string(s)
}

func (s ScoreMethod) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !s.WellKnown() {
		return validate.FailUnknown("ScoreMethod", ctx)
	}
	return validate.Pass()
}

// VulnerabilitySource names the registry a vulnerability record came from.
type VulnerabilitySource struct {
	Name *NormalizedString
	URL  *Uri
}

func (v VulnerabilitySource) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if v.Name != nil {
		result = result.Merge(v.Name.Validate(version, ctx.Extend(validate.Struct("VulnerabilitySource", "name"))))
	}
	if v.URL != nil {
		result = result.Merge(v.URL.Validate(version, ctx.Extend(validate.Struct("VulnerabilitySource", "url"))))
	}
	return result
}

// VulnerabilityReference is an alternate identifier for the same issue.
type VulnerabilityReference struct {
	ID     NormalizedString
	Source *VulnerabilitySource
}

func (v VulnerabilityReference) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := v.ID.Validate(version, ctx.Extend(validate.Struct("VulnerabilityReference", "id")))
	if v.Source != nil {
		result = result.Merge(v.Source.Validate(version, ctx.Extend(validate.Struct("VulnerabilityReference", "source"))))
	}
	return result
}

// VulnerabilityRating is one score assigned to a vulnerability.
type VulnerabilityRating struct {
	Source        *VulnerabilitySource
	Score         *float64
	Severity      *Severity
	Method        *ScoreMethod
	Vector        *NormalizedString
	Justification *NormalizedString
}

func (v VulnerabilityRating) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if v.Source != nil {
		result = result.Merge(v.Source.Validate(version, ctx.Extend(validate.Struct("VulnerabilityRating", "source"))))
	}
	if v.Severity != nil {
		result = result.Merge(v.Severity.Validate(version, ctx.Extend(validate.Struct("VulnerabilityRating", "severity"))))
	}
	if v.Method != nil {
		result = result.Merge(v.Method.Validate(version, ctx.Extend(validate.Struct("VulnerabilityRating", "score_method"))))
	}
	if v.Vector != nil {
		result = result.Merge(v.Vector.Validate(version, ctx.Extend(validate.Struct("VulnerabilityRating", "vector"))))
	}
	if v.Justification != nil {
		result = result.Merge(v.Justification.Validate(version, ctx.Extend(validate.Struct("VulnerabilityRating", "justification"))))
	}
	return result
}

// Advisory is a published notice about a vulnerability.
type Advisory struct {
	Title *NormalizedString
	URL   Uri
}

func (a Advisory) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if a.Title != nil {
		result = result.Merge(a.Title.Validate(version, ctx.Extend(validate.Struct("Advisory", "title"))))
	}
	return result.Merge(a.URL.Validate(version, ctx.Extend(validate.Struct("Advisory", "url"))))
}

// VulnerabilityCredits acknowledges the parties that found or reported the
// issue.
type VulnerabilityCredits struct {
	Organizations []OrganizationalEntity
	Individuals   []OrganizationalContact
}

func (v VulnerabilityCredits) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, org := range v.Organizations {
		result = result.Merge(org.Validate(version, ctx.Extend(validate.Struct("VulnerabilityCredits", "organizations"), validate.Array(i))))
	}
	for i, person := range v.Individuals {
		result = result.Merge(person.Validate(version, ctx.Extend(validate.Struct("VulnerabilityCredits", "individuals"), validate.Array(i))))
	}
	return result
}

// ImpactAnalysisState is the closed vocabulary of analysis states.
type ImpactAnalysisState string

const (
	ImpactAnalysisResolved             ImpactAnalysisState = "resolved"
	ImpactAnalysisResolvedWithPedigree ImpactAnalysisState = "resolved_with_pedigree"
	ImpactAnalysisExploitable          ImpactAnalysisState = "exploitable"
	ImpactAnalysisInTriage             ImpactAnalysisState = "in_triage"
	ImpactAnalysisFalsePositive        ImpactAnalysisState = "false_positive"
	ImpactAnalysisNotAffected          ImpactAnalysisState = "not_affected"
)

func (i ImpactAnalysisState) WellKnown() bool {
	switch i {
	case ImpactAnalysisResolved, ImpactAnalysisResolvedWithPedigree, ImpactAnalysisExploitable,
		ImpactAnalysisInTriage, ImpactAnalysisFalsePositive, ImpactAnalysisNotAffected:
		return true
	}
	return false
}

func (i ImpactAnalysisState) String() string {
	return string(i)
}

func (i ImpactAnalysisState) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !i.WellKnown() {
		return validate.FailUnknown("ImpactAnalysisState", ctx)
	}
	return validate.Pass()
}

// ImpactAnalysisJustification is the closed vocabulary of not-affected
// justifications.
type ImpactAnalysisJustification string

const (
	JustificationCodeNotPresent              ImpactAnalysisJustification = "code_not_present"
	JustificationCodeNotReachable            ImpactAnalysisJustification = "code_not_reachable"
	JustificationRequiresConfiguration       ImpactAnalysisJustification = "requires_configuration"
	JustificationRequiresDependency          ImpactAnalysisJustification = "requires_dependency"
	JustificationRequiresEnvironment         ImpactAnalysisJustification = "requires_environment"
	JustificationProtectedByCompiler         ImpactAnalysisJustification = "protected_by_compiler"
	JustificationProtectedAtRuntime          ImpactAnalysisJustification = "protected_at_runtime"
	JustificationProtectedAtPerimeter        ImpactAnalysisJustification = "protected_at_perimeter"
	JustificationProtectedByMitigatingControl ImpactAnalysisJustification = "protected_by_mitigating_control"
)

func (i ImpactAnalysisJustification) WellKnown() bool {
	switch i {
	case JustificationCodeNotPresent, JustificationCodeNotReachable,
		JustificationRequiresConfiguration, JustificationRequiresDependency,
		JustificationRequiresEnvironment, JustificationProtectedByCompiler,
		JustificationProtectedAtRuntime, JustificationProtectedAtPerimeter,
		JustificationProtectedByMitigatingControl:
		return true
	}
	return false
}

func (i ImpactAnalysisJustification) String() string {
	return string(i)
}

func (i ImpactAnalysisJustification) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !i.WellKnown() {
		return validate.FailUnknown("ImpactAnalysisJustification", ctx)
	}
	return validate.Pass()
}

// AnalysisResponse is the closed vocabulary of vendor responses.
type AnalysisResponse string

const (
	ResponseCanNotFix           AnalysisResponse = "can_not_fix"
	ResponseWillNotFix          AnalysisResponse = "will_not_fix"
	ResponseUpdate              AnalysisResponse = "update"
	ResponseRollback            AnalysisResponse = "rollback"
	ResponseWorkaroundAvailable AnalysisResponse = "workaround_available"
)

func (a AnalysisResponse) WellKnown() bool {
	switch a {
	case ResponseCanNotFix, ResponseWillNotFix, ResponseUpdate, ResponseRollback, ResponseWorkaroundAvailable:
		return true
	}
	return false
}

func (a AnalysisResponse) String() string {
	return string(a)
}

func (a AnalysisResponse) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !a.WellKnown() {
		return validate.FailUnknown("AnalysisResponse", ctx)
	}
	return validate.Pass()
}

// VulnerabilityAnalysis is the document author's impact assessment.
type VulnerabilityAnalysis struct {
	State         *ImpactAnalysisState
	Justification *ImpactAnalysisJustification
	Responses     []AnalysisResponse
	Detail        *NormalizedString
}

func (v VulnerabilityAnalysis) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if v.State != nil {
		result = result.Merge(v.State.Validate(version, ctx.Extend(validate.Struct("VulnerabilityAnalysis", "state"))))
	}
	if v.Justification != nil {
		result = result.Merge(v.Justification.Validate(version, ctx.Extend(validate.Struct("VulnerabilityAnalysis", "justification"))))
	}
	for i, response := range v.Responses {
		result = result.Merge(response.Validate(version, ctx.Extend(validate.Struct("VulnerabilityAnalysis", "responses"), validate.Array(i))))
	}
	if v.Detail != nil {
		result = result.Merge(v.Detail.Validate(version, ctx.Extend(validate.Struct("VulnerabilityAnalysis", "detail"))))
	}
	return result
}

// AffectedStatus is the closed vocabulary of version-range statuses.
type AffectedStatus string

const (
	AffectedStatusAffected   AffectedStatus = "affected"
	AffectedStatusUnaffected AffectedStatus = "unaffected"
	AffectedStatusUnknown    AffectedStatus = "unknown"
)

func (a AffectedStatus) WellKnown() bool {
	switch a {
	case AffectedStatusAffected, AffectedStatusUnaffected, AffectedStatusUnknown:
		return true
	}
	return false
}

func (a AffectedStatus) String() string {
	return string(a)
}

func (a AffectedStatus) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !a.WellKnown() {
		return validate.FailUnknown("AffectedStatus", ctx)
	}
	return validate.Pass()
}

// AffectedVersion identifies a single version or range of an affected
// component. Exactly one of Version or Range is set.
type AffectedVersion struct {
	Version *NormalizedString
	Range   *NormalizedString
	Status  *AffectedStatus
}

func (a AffectedVersion) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if a.Version != nil {
		result = result.Merge(a.Version.Validate(version, ctx.Extend(validate.Struct("AffectedVersion", "version"))))
	}
	if a.Range != nil {
		result = result.Merge(a.Range.Validate(version, ctx.Extend(validate.Struct("AffectedVersion", "range"))))
	}
	if a.Status != nil {
		result = result.Merge(a.Status.Validate(version, ctx.Extend(validate.Struct("AffectedVersion", "status"))))
	}
	return result
}

// VulnerabilityTarget points at a component or service the vulnerability
// applies to.
type VulnerabilityTarget struct {
	Ref      string
	Versions []AffectedVersion
}

func (v VulnerabilityTarget) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, affected := range v.Versions {
		result = result.Merge(affected.Validate(version, ctx.Extend(validate.Struct("VulnerabilityTarget", "versions"), validate.Array(i))))
	}
	return result
}

// Vulnerability describes a known security issue tied to one or more
// components. Only written at spec version 1.4 and later.
type Vulnerability struct {
	BomRef         *string
	ID             *NormalizedString
	Source         *VulnerabilitySource
	References     []VulnerabilityReference
	Ratings        []VulnerabilityRating
	CWEs           []int
	Description    *NormalizedString
	Detail         *NormalizedString
	Recommendation *NormalizedString
	Advisories     []Advisory
	Created        *DateTime
	Published      *DateTime
	Updated        *DateTime
	Credits        *VulnerabilityCredits
	Tools          Tools
	Analysis       *VulnerabilityAnalysis
	Affects        []VulnerabilityTarget
	Properties     Properties
}

func (v Vulnerability) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if v.ID != nil {
		result = result.Merge(v.ID.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "id"))))
	}
	if v.Source != nil {
		result = result.Merge(v.Source.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "source"))))
	}
	for i, ref := range v.References {
		result = result.Merge(ref.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "references"), validate.Array(i))))
	}
	for i, rating := range v.Ratings {
		result = result.Merge(rating.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "ratings"), validate.Array(i))))
	}
	if v.Description != nil {
		result = result.Merge(v.Description.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "description"))))
	}
	if v.Detail != nil {
		result = result.Merge(v.Detail.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "detail"))))
	}
	if v.Recommendation != nil {
		result = result.Merge(v.Recommendation.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "recommendation"))))
	}
	for i, advisory := range v.Advisories {
		result = result.Merge(advisory.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "advisories"), validate.Array(i))))
	}
	if v.Created != nil {
		result = result.Merge(v.Created.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "created"))))
	}
	if v.Published != nil {
		result = result.Merge(v.Published.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "published"))))
	}
	if v.Updated != nil {
		result = result.Merge(v.Updated.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "updated"))))
	}
	if v.Credits != nil {
		result = result.Merge(v.Credits.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "credits"))))
	}
	if len(v.Tools) > 0 {
		result = result.Merge(v.Tools.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "tools"))))
	}
	if v.Analysis != nil {
		result = result.Merge(v.Analysis.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "analysis"))))
	}
	for i, target := range v.Affects {
		result = result.Merge(target.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "affects"), validate.Array(i))))
	}
	if len(v.Properties) > 0 {
		result = result.Merge(v.Properties.Validate(version, ctx.Extend(validate.Struct("Vulnerability", "properties"))))
	}
	return result
}

// Vulnerabilities is a list of vulnerabilities.
type Vulnerabilities []Vulnerability

func (v Vulnerabilities) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, vulnerability := range v {
		result = result.Merge(vulnerability.Validate(version, ctx.Extend(validate.Struct("Vulnerabilities", "inner"), validate.Array(i))))
	}
	return result
}
