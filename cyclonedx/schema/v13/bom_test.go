package v13

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

const minimalJSON = `{"bomFormat":"CycloneDX","specVersion":"1.3","serialNumber":"urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79","version":1}`

func testBom() model.Bom {
	serial := model.UrnUUIDUnchecked("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")
	timestamp := model.DateTimeUnchecked("2024-01-02T15:04:05Z")
	toolName := model.NewNormalizedString("gobom")
	toolVersion := model.NewNormalizedString("0.1.0")

	appRef := "pkg:golang/example.com/app@v1.0.0"
	appPurl := model.PurlUnchecked(appRef)
	app := model.NewComponent(model.ClassificationApplication, "example.com/app", "v1.0.0")
	app.BomRef = &appRef
	app.Purl = &appPurl

	libRef := "pkg:golang/github.com/lib/pq@v1.10.0"
	spdxID := model.SpdxIdentifier("MIT")
	expression := model.LicenseExpressionUnchecked("MIT OR Apache-2.0")
	comment := model.NewNormalizedString("release archive")
	lib := model.NewComponent(model.ClassificationLibrary, "github.com/lib/pq", "v1.10.0")
	lib.BomRef = &libRef
	lib.Licenses = model.Licenses{
		{License: &model.License{Identifier: model.LicenseIdentifier{SpdxID: &spdxID}}},
		{Expression: &expression},
	}
	lib.Hashes = model.Hashes{
		{Alg: model.HashAlgorithmSHA256, Content: model.HashValue(strings.Repeat("ab", 32))},
	}
	lib.ExternalReferences = model.ExternalReferences{
		{
			Type:    model.ExternalReferenceDistribution,
			URL:     model.UriUnchecked("https://example.com/releases"),
			Comment: &comment,
		},
	}
	lib.Properties = model.Properties{
		{Name: "internal:team", Value: model.NewNormalizedString("storage")},
	}

	serviceName := model.NewNormalizedString("billing-api")
	authenticated := true
	services := model.Services{
		{
			Name:          serviceName,
			Endpoints:     []model.Uri{model.UriUnchecked("https://billing.example.com")},
			Authenticated: &authenticated,
			Data: []model.DataClassification{
				{Flow: model.DataFlowBiDirectional, Classification: model.NewNormalizedString("PII")},
			},
		},
	}

	components := model.Components{app, lib}
	return model.Bom{
		SpecVersion:  spec.V1_3,
		Version:      1,
		SerialNumber: &serial,
		Metadata: &model.Metadata{
			Timestamp: &timestamp,
			Tools:     model.Tools{{Name: &toolName, Version: &toolVersion}},
		},
		Components: &components,
		Services:   &services,
		Dependencies: model.Dependencies{
			{Ref: appRef, DependsOn: []string{libRef}},
			{Ref: libRef},
		},
		Compositions: model.Compositions{
			{Aggregate: model.AggregateComplete, Assemblies: []string{appRef}, Dependencies: []string{libRef}},
		},
		Properties: model.Properties{
			{Name: "build", Value: model.NewNormalizedString("ci")},
		},
	}
}

func TestReadJSONMinimalExample(t *testing.T) {
	bom, err := ReadJSON(strings.NewReader(minimalJSON))
	require.NoError(t, err)

	assert.Equal(t, spec.V1_3, bom.SpecVersion)
	assert.Equal(t, 1, bom.Version)
	require.NotNil(t, bom.SerialNumber)
	assert.Equal(t, "urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79", bom.SerialNumber.String())
	assert.Nil(t, bom.Components)
	assert.Nil(t, bom.Services)
}

func TestWriteJSONMinimalExampleIsByteIdentical(t *testing.T) {
	bom, err := ReadJSON(strings.NewReader(minimalJSON))
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(bom, &buffer))

	assert.Equal(t, minimalJSON, buffer.String())
}

func TestJSONRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(original, &buffer))

	parsed, err := ReadJSON(&buffer)
	require.NoError(t, err)

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("document changed across a JSON round trip (-original +parsed):\n%s", diff)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `xmlns="http://cyclonedx.org/schema/bom/1.3"`)

	parsed, err := ReadXML(strings.NewReader(output))
	require.NoError(t, err)

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("document changed across an XML round trip (-original +parsed):\n%s", diff)
	}
}

func TestWriteXMLFlattensDependencyGraph(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `<dependency ref="pkg:golang/example.com/app@v1.0.0">`)
	assert.Contains(t, output, `<dependency ref="pkg:golang/github.com/lib/pq@v1.10.0"></dependency>`)
}

func TestReadJSONIgnoresUnknownKeys(t *testing.T) {
	input := `{"bomFormat":"CycloneDX","specVersion":"1.3","version":1,"somethingNew":{"deep":true}}`

	bom, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, bom.Version)
}

func TestReadJSONRejectsMismatchedHeader(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"bomFormat":"SPDX","specVersion":"1.3","version":1}`))
	assert.Error(t, err)

	_, err = ReadJSON(strings.NewReader(`{"bomFormat":"CycloneDX","specVersion":"1.4","version":1}`))
	assert.Error(t, err)
}

func TestReadJSONDefaultsVersionToOne(t *testing.T) {
	bom, err := ReadJSON(strings.NewReader(`{"bomFormat":"CycloneDX","specVersion":"1.3"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, bom.Version)
}

func TestReadXMLRejectsWrongNamespace(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.4" version="1"/>`

	_, err := ReadXML(strings.NewReader(input))

	var nsErr *xmlio.InvalidNamespaceError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, "http://cyclonedx.org/schema/bom/1.3", nsErr.ExpectedNamespace)
}

func TestReadXMLPreservesUnknownEnumValues(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.3" version="1">
  <components>
    <component type="widget">
      <name>thing</name>
      <version>1.0</version>
      <hashes>
        <hash alg="FOO-999">aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa</hash>
      </hashes>
    </component>
  </components>
</bom>`

	bom, err := ReadXML(strings.NewReader(input))
	require.NoError(t, err)

	require.NotNil(t, bom.Components)
	component := (*bom.Components)[0]
	assert.Equal(t, model.Classification("widget"), component.ComponentType)
	assert.Equal(t, model.HashAlgorithm("FOO-999"), component.Hashes[0].Alg)

	result := bom.Validate()
	require.False(t, result.Passed())
	messages := make([]string, 0)
	for _, reason := range result.Reasons() {
		messages = append(messages, reason.Message)
	}
	assert.Contains(t, messages, "Unknown Classification found")
	assert.Contains(t, messages, "Unknown HashAlgorithm found")
}

func TestReadXMLSkipsForeignElementsInHandRolledCodecs(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.3" version="1">
  <components>
    <component type="library">
      <name>pq</name>
      <version>1.10.0</version>
      <licenses>
        <mystery><deep/></mystery>
        <expression>MIT</expression>
      </licenses>
    </component>
  </components>
  <dependencies>
    <mystery/>
    <dependency ref="a">
      <mystery><deep/></mystery>
      <dependency ref="b"/>
    </dependency>
  </dependencies>
</bom>`

	bom, err := ReadXML(strings.NewReader(input))
	require.NoError(t, err)

	component := (*bom.Components)[0]
	require.Len(t, component.Licenses, 1)
	assert.Equal(t, "MIT", component.Licenses[0].Expression.String())

	require.Len(t, bom.Dependencies, 1)
	assert.Equal(t, "a", bom.Dependencies[0].Ref)
	assert.Equal(t, []string{"b"}, bom.Dependencies[0].DependsOn)
}

func TestReadXMLEnforcesRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name: "component missing name",
			input: `<bom xmlns="http://cyclonedx.org/schema/bom/1.3">
  <components><component type="library"><version>1</version></component></components>
</bom>`,
			check: func(t *testing.T, err error) {
				var dataErr *xmlio.RequiredDataMissingError
				require.ErrorAs(t, err, &dataErr)
				assert.Equal(t, "name", dataErr.RequiredField)
			},
		},
		{
			name: "hash missing alg attribute",
			input: `<bom xmlns="http://cyclonedx.org/schema/bom/1.3">
  <components><component type="library"><name>x</name><hashes><hash>abcd</hash></hashes></component></components>
</bom>`,
			check: func(t *testing.T, err error) {
				var attrErr *xmlio.RequiredAttributeMissingError
				require.ErrorAs(t, err, &attrErr)
				assert.Equal(t, "alg", attrErr.Attribute)
			},
		},
		{
			name: "dependency missing ref attribute",
			input: `<bom xmlns="http://cyclonedx.org/schema/bom/1.3">
  <dependencies><dependency/></dependencies>
</bom>`,
			check: func(t *testing.T, err error) {
				var attrErr *xmlio.RequiredAttributeMissingError
				require.ErrorAs(t, err, &attrErr)
				assert.Equal(t, "ref", attrErr.Attribute)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadXML(strings.NewReader(test.input))
			require.Error(t, err)
			test.check(t, err)
		})
	}
}

func TestWriteDropsFieldsUnsupportedByThisRevision(t *testing.T) {
	bom := testBom()
	vulnID := model.NewNormalizedString("CVE-2024-0001")
	bom.Vulnerabilities = model.Vulnerabilities{{ID: &vulnID}}
	signature := model.Signature{}
	bom.Signature = &signature

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(bom, &buffer))

	output := buffer.String()
	assert.NotContains(t, output, "vulnerabilities")
	assert.NotContains(t, output, "signature")
}

func TestCompositionRefsRoundTripInBothFormats(t *testing.T) {
	original := testBom()

	var jsonBuffer bytes.Buffer
	require.NoError(t, WriteJSON(original, &jsonBuffer))
	assert.Contains(t, jsonBuffer.String(), `"assemblies":["pkg:golang/example.com/app@v1.0.0"]`)

	var xmlBuffer bytes.Buffer
	require.NoError(t, WriteXML(original, &xmlBuffer))
	assert.Contains(t, xmlBuffer.String(), `<assembly ref="pkg:golang/example.com/app@v1.0.0">`)

	fromJSON, err := ReadJSON(&jsonBuffer)
	require.NoError(t, err)
	fromXML, err := ReadXML(&xmlBuffer)
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON.Compositions, fromXML.Compositions); diff != "" {
		t.Errorf("compositions differ between formats (-json +xml):\n%s", diff)
	}
}
