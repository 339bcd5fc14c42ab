package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// AggregateType is the closed vocabulary of composition completeness
// statements.
type AggregateType string

const (
	AggregateComplete                 AggregateType = "complete"
	AggregateIncomplete               AggregateType = "incomplete"
	AggregateIncompleteFirstPartyOnly AggregateType = "incomplete_first_party_only"
	AggregateIncompleteThirdPartyOnly AggregateType = "incomplete_third_party_only"
	AggregateUnknown                  AggregateType = "unknown"
	AggregateNotSpecified             AggregateType = "not_specified"
)

func (a AggregateType) WellKnown() bool {
	switch a {
	case AggregateComplete, AggregateIncomplete, AggregateIncompleteFirstPartyOnly,
		AggregateIncompleteThirdPartyOnly, AggregateUnknown, AggregateNotSpecified:
		return true
	}
	return false
}

func (a AggregateType) String() string {
	return string(a)
}

func (a AggregateType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !a.WellKnown() {
		return validate.FailUnknown("AggregateType", ctx)
	}
	return validate.Pass()
}

// Composition states how complete a set of assemblies or dependencies is.
type Composition struct {
	Aggregate    AggregateType
	Assemblies   []string
	Dependencies []string
	// Signature is only written at spec version 1.4 and later, and only to
	// JSON documents.
	Signature *Signature
}

func (c Composition) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := c.Aggregate.Validate(version, ctx.Extend(validate.Struct("Composition", "aggregate")))
	if c.Signature != nil {
		result = result.Merge(c.Signature.Validate(version, ctx.Extend(validate.Struct("Composition", "signature"))))
	}
	return result
}

// Compositions is a list of compositions.
type Compositions []Composition

func (c Compositions) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, composition := range c {
		result = result.Merge(composition.Validate(version, ctx.Extend(validate.Struct("Compositions", "inner"), validate.Array(i))))
	}
	return result
}
