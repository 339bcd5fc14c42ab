/*
Package validate provides the context-tracking validation framework used by
the domain model. Validation walks a document tree collecting structured
failure reports; failures are ordinary return values, never errors.
*/
package validate

import (
	"fmt"
	"strings"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

// Validator is implemented by every domain type. The result of validating a
// struct is the ordered union of its fields' results, each tagged with the
// path component that locates the field.
type Validator interface {
	Validate(version spec.Version, ctx Context) Result
}

// PathComponent is one breadcrumb in a validation context path.
type PathComponent struct {
	// StructName and FieldName are set for struct-field components.
	StructName string
	FieldName  string
	// Index is set for array components (IsArray true).
	Index   int
	IsArray bool
}

// Struct returns a struct-field path component.
func Struct(structName, fieldName string) PathComponent {
	return PathComponent{StructName: structName, FieldName: fieldName}
}

// Array returns an array-index path component.
func Array(index int) PathComponent {
	return PathComponent{Index: index, IsArray: true}
}

func (p PathComponent) String() string {
	if p.IsArray {
		return fmt.Sprintf("[%d]", p.Index)
	}
	return p.FieldName
}

// Context is the ordered path from the document root down to the value
// being validated. Contexts are immutable; Extend returns a copy so sibling
// validators never observe each other's path components.
type Context struct {
	path []PathComponent
}

// NewContext returns an empty (document root) context.
func NewContext() Context {
	return Context{}
}

// Extend returns a new context with the given components appended.
func (c Context) Extend(components ...PathComponent) Context {
	extended := make([]PathComponent, 0, len(c.path)+len(components))
	extended = append(extended, c.path...)
	extended = append(extended, components...)
	return Context{path: extended}
}

// Path returns a copy of the breadcrumb components.
func (c Context) Path() []PathComponent {
	out := make([]PathComponent, len(c.path))
	copy(out, c.path)
	return out
}

func (c Context) String() string {
	var sb strings.Builder
	for _, component := range c.path {
		if component.IsArray {
			sb.WriteString(component.String())
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(component.FieldName)
	}
	return sb.String()
}

// FailureReason is one validation failure with the context that locates it.
type FailureReason struct {
	Message string
	Context Context
}

// Result accumulates validation failures. The zero value is a pass.
type Result struct {
	reasons []FailureReason
}

// Passed reports whether no failures were collected.
func (r Result) Passed() bool {
	return len(r.reasons) == 0
}

// Reasons returns the ordered failure list.
func (r Result) Reasons() []FailureReason {
	out := make([]FailureReason, len(r.reasons))
	copy(out, r.reasons)
	return out
}

// Merge appends another result's failures, preserving order. Validation is
// not short-circuiting: every field contributes its failures.
func (r Result) Merge(other Result) Result {
	if len(other.reasons) == 0 {
		return r
	}
	merged := make([]FailureReason, 0, len(r.reasons)+len(other.reasons))
	merged = append(merged, r.reasons...)
	merged = append(merged, other.reasons...)
	return Result{reasons: merged}
}

// Pass returns a passing result.
func Pass() Result {
	return Result{}
}

// Fail returns a result with a single failure at the given context.
func Fail(message string, ctx Context) Result {
	return Result{reasons: []FailureReason{{Message: message, Context: ctx}}}
}

// FailUnknown returns the fixed failure used for open enum escape variants.
func FailUnknown(what string, ctx Context) Result {
	return Fail(fmt.Sprintf("Unknown %s found", what), ctx)
}
