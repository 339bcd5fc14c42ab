package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// Dependency maps a component's bom-ref to the bom-refs it depends on.
// The graph is stored as a flat pair list; no cycle detection is performed.
type Dependency struct {
	Ref       string
	DependsOn []string
}

// Dependencies is the document's dependency graph.
type Dependencies []Dependency

func (d Dependencies) Validate(_ spec.Version, _ validate.Context) validate.Result {
	return validate.Pass()
}
