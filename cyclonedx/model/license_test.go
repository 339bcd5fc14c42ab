package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

func TestNewLicenseExpression(t *testing.T) {
	tests := []struct {
		expression string
		wantErr    bool
	}{
		{expression: "MIT", wantErr: false},
		{expression: "MIT OR Apache-2.0", wantErr: false},
		{expression: "(MIT OR Apache-2.0) AND BSD-3-Clause", wantErr: false},
		{expression: "GPL-2.0-only WITH Classpath-exception-2.0", wantErr: false},
		{expression: "", wantErr: true},
		{expression: "MIT OR", wantErr: true},
		{expression: "OR MIT", wantErr: true},
		{expression: "(MIT", wantErr: true},
		{expression: "MIT)", wantErr: true},
		{expression: "MIT Apache-2.0", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			_, err := NewLicenseExpression(test.expression)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLicenseExpression)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLicenseIdentifierValidate(t *testing.T) {
	id := SpdxIdentifier("MIT")
	name := NewNormalizedString("my custom license")

	assert.True(t, LicenseIdentifier{SpdxID: &id}.Validate(spec.V1_3, validate.NewContext()).Passed())
	assert.True(t, LicenseIdentifier{Name: &name}.Validate(spec.V1_3, validate.NewContext()).Passed())

	empty := LicenseIdentifier{}
	result := empty.Validate(spec.V1_3, validate.NewContext())
	assert.False(t, result.Passed())
}

func TestLicensesValidatePath(t *testing.T) {
	expression := LicenseExpressionUnchecked("MIT OR")
	licenses := Licenses{{Expression: &expression}}

	result := licenses.Validate(spec.V1_3, validate.NewContext())

	reasons := result.Reasons()
	assert.Len(t, reasons, 1)
	assert.Equal(t, "inner[0].expression", reasons[0].Context.String())
}
