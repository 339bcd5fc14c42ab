package model

import (
	"fmt"
	"strings"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// LicenseExpression is an SPDX license expression such as
// "MIT OR Apache-2.0". Construction hard-fails on malformed expressions
// because there is no safe fallback representation.
type LicenseExpression string

// NewLicenseExpression checks the expression for balanced parentheses and a
// well-formed operator/operand alternation.
func NewLicenseExpression(value string) (LicenseExpression, error) {
	if err := checkLicenseExpression(value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLicenseExpression, err)
	}
	return LicenseExpression(value), nil
}

// LicenseExpressionUnchecked preserves a possibly-invalid expression read
// from an external document. For use by the schema decoding layer only.
func LicenseExpressionUnchecked(value string) LicenseExpression {
	return LicenseExpression(value)
}

func checkLicenseExpression(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("expression is empty")
	}
	depth := 0
	expectOperand := true
	fields := strings.Fields(strings.ReplaceAll(strings.ReplaceAll(trimmed, "(", " ( "), ")", " ) "))
	for _, field := range fields {
		switch field {
		case "(":
			if !expectOperand {
				return fmt.Errorf("unexpected %q", field)
			}
			depth++
		case ")":
			if expectOperand || depth == 0 {
				return fmt.Errorf("unexpected %q", field)
			}
			depth--
		case "AND", "OR":
			if expectOperand {
				return fmt.Errorf("operator %q without left operand", field)
			}
			expectOperand = true
		case "WITH":
			if expectOperand {
				return fmt.Errorf("operator %q without left operand", field)
			}
			expectOperand = true
		default:
			if !expectOperand {
				return fmt.Errorf("expected operator before %q", field)
			}
			expectOperand = false
		}
	}
	if expectOperand {
		return fmt.Errorf("expression ends with an operator")
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses")
	}
	return nil
}

func (l LicenseExpression) String() string {
	return string(l)
}

func (l LicenseExpression) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if err := checkLicenseExpression(string(l)); err != nil {
		return validate.Fail("LicenseExpression is not a valid SPDX expression", ctx)
	}
	return validate.Pass()
}

// SpdxIdentifier is a single SPDX license identifier.
type SpdxIdentifier string

func (s SpdxIdentifier) String() string {
	return string(s)
}

func (s SpdxIdentifier) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if strings.TrimSpace(string(s)) == "" || strings.ContainsAny(string(s), " \t\r\n") {
		return validate.Fail("SpdxIdentifier is not a valid SPDX license id", ctx)
	}
	return validate.Pass()
}

// LicenseIdentifier names a license either by SPDX id or free text.
// Exactly one of the fields is set.
type LicenseIdentifier struct {
	SpdxID *SpdxIdentifier
	Name   *NormalizedString
}

func (l LicenseIdentifier) Validate(version spec.Version, ctx validate.Context) validate.Result {
	switch {
	case l.SpdxID != nil:
		return l.SpdxID.Validate(version, ctx.Extend(validate.Struct("LicenseIdentifier", "spdx_identifier")))
	case l.Name != nil:
		return l.Name.Validate(version, ctx.Extend(validate.Struct("LicenseIdentifier", "name")))
	}
	return validate.Fail("LicenseIdentifier has neither an SPDX id nor a name", ctx)
}

// License is a single license with optional attached text and URL.
type License struct {
	Identifier LicenseIdentifier
	Text       *AttachedText
	URL        *Uri
}

func (l License) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := l.Identifier.Validate(version, ctx.Extend(validate.Struct("License", "license_identifier")))
	if l.Text != nil {
		result = result.Merge(l.Text.Validate(version, ctx.Extend(validate.Struct("License", "text"))))
	}
	if l.URL != nil {
		result = result.Merge(l.URL.Validate(version, ctx.Extend(validate.Struct("License", "url"))))
	}
	return result
}

// LicenseChoice is either a single license or a license expression.
type LicenseChoice struct {
	License    *License
	Expression *LicenseExpression
}

func (l LicenseChoice) Validate(version spec.Version, ctx validate.Context) validate.Result {
	switch {
	case l.License != nil:
		return l.License.Validate(version, ctx.Extend(validate.Struct("LicenseChoice", "license")))
	case l.Expression != nil:
		return l.Expression.Validate(version, ctx.Extend(validate.Struct("LicenseChoice", "expression")))
	}
	return validate.Fail("LicenseChoice has neither a license nor an expression", ctx)
}

// Licenses is a list of license choices.
type Licenses []LicenseChoice

func (l Licenses) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, choice := range l {
		result = result.Merge(choice.Validate(version, ctx.Extend(validate.Struct("Licenses", "inner"), validate.Array(i))))
	}
	return result
}
