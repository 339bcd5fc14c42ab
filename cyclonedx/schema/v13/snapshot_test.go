package v13

import (
	"bytes"
	"flag"
	"testing"

	"github.com/anchore/go-testutils"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

var update = flag.Bool("update", false, "update the *.golden files for document snapshots")

func snapshotBom() model.Bom {
	serial := model.UrnUUIDUnchecked("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")
	timestamp := model.DateTimeUnchecked("2024-01-02T15:04:05Z")
	toolName := model.NewNormalizedString("gobom")
	toolVersion := model.NewNormalizedString("0.1.0")

	ref := "pkg:golang/app@1.0.0"
	purl := model.PurlUnchecked(ref)
	app := model.NewComponent(model.ClassificationApplication, "app", "1.0.0")
	app.BomRef = &ref
	app.Purl = &purl

	components := model.Components{app}
	return model.Bom{
		SpecVersion:  spec.V1_3,
		Version:      1,
		SerialNumber: &serial,
		Metadata: &model.Metadata{
			Timestamp: &timestamp,
			Tools:     model.Tools{{Name: &toolName, Version: &toolVersion}},
		},
		Components: &components,
	}
}

func assertMatchesGolden(t *testing.T, actual []byte) {
	t.Helper()
	if *update {
		testutils.UpdateGoldenFileContents(t, actual)
	}

	expected := testutils.GetGoldenFileContents(t)
	if !bytes.Equal(expected, actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), true)
		t.Errorf("mismatched output:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestXMLDocumentSnapshot(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteXML(snapshotBom(), &buffer))
	assertMatchesGolden(t, buffer.Bytes())
}

func TestJSONDocumentSnapshot(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(snapshotBom(), &buffer))
	assertMatchesGolden(t, buffer.Bytes())
}
