package cyclonedx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

const minimalJSON13 = `{"bomFormat":"CycloneDX","specVersion":"1.3","serialNumber":"urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79","version":1}`

func TestParseFromJSONDispatchesByVersion(t *testing.T) {
	bom, err := ParseFromJSONv1_3(strings.NewReader(minimalJSON13))
	require.NoError(t, err)
	assert.Equal(t, spec.V1_3, bom.SpecVersion)
	assert.Equal(t, 1, bom.Version)
}

func TestParseFromJSONWrapsErrors(t *testing.T) {
	_, err := ParseFromJSONv1_4(strings.NewReader(minimalJSON13))
	require.Error(t, err)

	var readErr *JSONReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := ParseFromJSON(strings.NewReader(minimalJSON13), spec.Version(99))
	assert.ErrorIs(t, err, ErrUnsupportedSpecVersion)

	_, err = ParseFromXML(strings.NewReader("<bom/>"), spec.Version(99))
	assert.ErrorIs(t, err, ErrUnsupportedSpecVersion)

	err = OutputAsXML(model.Bom{}, &bytes.Buffer{}, spec.Version(99))
	assert.ErrorIs(t, err, ErrUnsupportedSpecVersion)

	err = OutputAsJSON(model.Bom{}, &bytes.Buffer{}, spec.Version(99))
	assert.ErrorIs(t, err, ErrUnsupportedSpecVersion)
}

func TestOutputAsXMLDispatchesAcrossVersions(t *testing.T) {
	bom := model.NewBom()

	for _, version := range spec.All() {
		var buffer bytes.Buffer
		require.NoError(t, OutputAsXML(bom, &buffer, version))
		assert.Contains(t, buffer.String(), version.XMLNamespace())
	}
}

func TestOutputAsJSONStampsTheTargetVersion(t *testing.T) {
	bom := model.NewBom()

	var buffer bytes.Buffer
	require.NoError(t, OutputAsJSONv1_4(bom, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `"bomFormat":"CycloneDX"`)
	assert.Contains(t, output, `"specVersion":"1.4"`)
}

func TestRoundTripAcrossFrontDoor(t *testing.T) {
	bom := model.NewBom()

	var buffer bytes.Buffer
	require.NoError(t, OutputAsJSONv1_5(bom, &buffer))

	parsed, err := ParseFromJSONv1_5(&buffer)
	require.NoError(t, err)
	assert.Equal(t, bom.SerialNumber.String(), parsed.SerialNumber.String())
}

func TestUnsupportedSpecVersionMessageNamesTheVersion(t *testing.T) {
	err := unsupportedSpecVersion(spec.Version(99))
	assert.True(t, errors.Is(err, ErrUnsupportedSpecVersion))
	assert.Contains(t, err.Error(), "unknown(99)")
}
