package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Property is a single name/value pair from the property taxonomy.
type Property struct {
	Name  string
	Value NormalizedString
}

func (p Property) Validate(version spec.Version, ctx validate.Context) validate.Result {
	return p.Value.Validate(version, ctx.Extend(validate.Struct("Property", "value")))
}

// Properties is a list of name/value pairs.
type Properties []Property

func (p Properties) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, property := range p {
		result = result.Merge(property.Validate(version, ctx.Extend(validate.Struct("Properties", "inner"), validate.Array(i))))
	}
	return result
}
