package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

func TestNewBom(t *testing.T) {
	bom := NewBom()
	assert.Equal(t, spec.V1_5, bom.SpecVersion)
	assert.Equal(t, 1, bom.Version)
	require.NotNil(t, bom.SerialNumber)
	assert.True(t, bom.Validate().Passed())
}

func TestBomValidateLocatesFailuresByPath(t *testing.T) {
	components := Components{
		NewComponent(ClassificationLibrary, "a", "1"),
		NewComponent(ClassificationLibrary, "b", "2"),
		NewComponent(Classification("not-a-thing"), "c", "3"),
	}
	bom := NewBom()
	bom.Components = &components

	result := bom.Validate()

	reasons := result.Reasons()
	require.Len(t, reasons, 1)
	assert.Equal(t, "Unknown Classification found", reasons[0].Message)
	assert.Equal(t, "components[2].component_type", reasons[0].Context.String())
}

func TestBomValidateRejectsDuplicateBomRefs(t *testing.T) {
	ref := "pkg:golang/example@v1"
	first := NewComponent(ClassificationLibrary, "first", "v1")
	first.BomRef = &ref
	second := NewComponent(ClassificationLibrary, "second", "v2")
	second.BomRef = &ref
	components := Components{first, second}

	bom := NewBom()
	bom.Components = &components

	result := bom.Validate()

	require.False(t, result.Passed())
	assert.Contains(t, result.Reasons()[0].Message, "already been used")
}

func TestBomValidateVersionOverridesRecordedVersion(t *testing.T) {
	bom := NewBom()
	bom.SpecVersion = spec.V1_3

	assert.True(t, bom.ValidateVersion(spec.V1_5).Passed())
	assert.True(t, bom.Validate().Passed())
}
