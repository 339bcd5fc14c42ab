package v14

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

func testVulnerability() model.Vulnerability {
	bomRef := "vuln-1"
	id := model.NewNormalizedString("CVE-2024-0001")
	sourceName := model.NewNormalizedString("NVD")
	sourceURL := model.UriUnchecked("https://nvd.nist.gov")
	score := 9.8
	severity := model.SeverityCritical
	method := model.ScoreMethodCVSSv31
	vector := model.NewNormalizedString("CVSS:3.1/AV:N/AC:L")
	description := model.NewNormalizedString("remote code execution")
	created := model.DateTimeUnchecked("2024-02-01T00:00:00Z")
	state := model.ImpactAnalysisExploitable
	rangeExpr := model.NewNormalizedString("vers:golang/<1.2.3")
	status := model.AffectedStatusAffected

	return model.Vulnerability{
		BomRef: &bomRef,
		ID:     &id,
		Source: &model.VulnerabilitySource{Name: &sourceName, URL: &sourceURL},
		Ratings: []model.VulnerabilityRating{
			{Score: &score, Severity: &severity, Method: &method, Vector: &vector},
		},
		CWEs:        []int{94, 502},
		Description: &description,
		Created:     &created,
		Analysis:    &model.VulnerabilityAnalysis{State: &state},
		Affects: []model.VulnerabilityTarget{
			{
				Ref: "pkg:golang/github.com/lib/pq@v1.10.0",
				Versions: []model.AffectedVersion{
					{Range: &rangeExpr, Status: &status},
				},
			},
		},
	}
}

func testBom() model.Bom {
	serial := model.UrnUUIDUnchecked("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")
	toolName := model.NewNormalizedString("gobom")

	libRef := "pkg:golang/github.com/lib/pq@v1.10.0"
	lib := model.NewComponent(model.ClassificationLibrary, "github.com/lib/pq", "v1.10.0")
	lib.BomRef = &libRef

	components := model.Components{lib}
	return model.Bom{
		SpecVersion:  spec.V1_4,
		Version:      1,
		SerialNumber: &serial,
		Metadata: &model.Metadata{
			Tools: model.Tools{
				{
					Name: &toolName,
					ExternalReferences: model.ExternalReferences{
						{Type: model.ExternalReferenceWebsite, URL: model.UriUnchecked("https://example.com/gobom")},
					},
				},
			},
		},
		Components:      &components,
		Vulnerabilities: model.Vulnerabilities{testVulnerability()},
		Signature:       model.SingleSignature(model.SignatureAlgorithmES256, "c2lnbmF0dXJl"),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `"specVersion":"1.4"`)
	assert.Contains(t, output, `"vulnerabilities"`)
	assert.Contains(t, output, `"signature"`)

	parsed, err := ReadJSON(strings.NewReader(output))
	require.NoError(t, err)

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("document changed across a JSON round trip (-original +parsed):\n%s", diff)
	}
}

func TestXMLRoundTripDropsSignature(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `xmlns="http://cyclonedx.org/schema/bom/1.4"`)
	assert.NotContains(t, output, "signature")

	parsed, err := ReadXML(strings.NewReader(output))
	require.NoError(t, err)

	// the signature is a JSON-only construct
	expected := original
	expected.Signature = nil
	if diff := cmp.Diff(expected, parsed); diff != "" {
		t.Errorf("document changed across an XML round trip (-original +parsed):\n%s", diff)
	}
}

func TestToolExternalReferencesRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	parsed, err := ReadXML(&buffer)
	require.NoError(t, err)

	require.NotNil(t, parsed.Metadata)
	require.Len(t, parsed.Metadata.Tools, 1)
	require.Len(t, parsed.Metadata.Tools[0].ExternalReferences, 1)
	assert.Equal(t, model.ExternalReferenceWebsite, parsed.Metadata.Tools[0].ExternalReferences[0].Type)
}

func TestReadXMLRequiresVulnerabilityTargetRef(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.4">
  <vulnerabilities>
    <vulnerability>
      <id>CVE-2024-0001</id>
      <affects><target></target></affects>
    </vulnerability>
  </vulnerabilities>
</bom>`

	_, err := ReadXML(strings.NewReader(input))

	var dataErr *xmlio.RequiredDataMissingError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "ref", dataErr.RequiredField)
}

func TestWriteDropsFieldsIntroducedInLaterRevisions(t *testing.T) {
	bom := testBom()
	phase := model.LifecycleBuild
	bom.Metadata.Lifecycles = []model.Lifecycle{{Phase: &phase}}
	bom.Formulation = model.Formulation{{}}

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(bom, &buffer))

	output := buffer.String()
	assert.NotContains(t, output, "lifecycles")
	assert.NotContains(t, output, "formulation")
}
