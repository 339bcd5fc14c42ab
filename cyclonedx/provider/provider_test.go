package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

type stubSource struct {
	main     Package
	packages []Package
	mainErr  error
	pkgsErr  error
}

func (s stubSource) Main() (Package, error) {
	return s.main, s.mainErr
}

func (s stubSource) Packages() ([]Package, error) {
	return s.packages, s.pkgsErr
}

func testSource() stubSource {
	return stubSource{
		main: Package{
			Name:        "example.com/app",
			Version:     "(devel)",
			PurlType:    "golang",
			Application: true,
		},
		packages: []Package{
			{Name: "github.com/direct/dep", Version: "v1.2.3", PurlType: "golang", License: "MIT"},
			{Name: "github.com/transitive/dep", Version: "v0.9.0", PurlType: "golang", Indirect: true},
		},
	}
}

func TestToBomAssemblesMetadata(t *testing.T) {
	bom, err := ToBom(testSource(), Config{ToolName: "gobom", ToolVersion: "0.1.0"})
	require.NoError(t, err)

	assert.Equal(t, spec.V1_5, bom.SpecVersion)
	require.NotNil(t, bom.SerialNumber)

	require.NotNil(t, bom.Metadata)
	require.Len(t, bom.Metadata.Tools, 1)
	assert.Equal(t, "gobom", bom.Metadata.Tools[0].Name.String())
	assert.Equal(t, "0.1.0", bom.Metadata.Tools[0].Version.String())
	assert.NotNil(t, bom.Metadata.Timestamp)

	main := bom.Metadata.Component
	require.NotNil(t, main)
	assert.Equal(t, model.ClassificationApplication, main.ComponentType)
	assert.Equal(t, "example.com/app", main.Name.String())
	assert.NotNil(t, main.Purl)
}

func TestToBomSkipsToolEntryWithoutName(t *testing.T) {
	bom, err := ToBom(testSource(), Config{})
	require.NoError(t, err)

	require.NotNil(t, bom.Metadata)
	assert.Empty(t, bom.Metadata.Tools)
}

func TestToBomTopLevelOnly(t *testing.T) {
	bom, err := ToBom(testSource(), Config{TopLevelOnly: true})
	require.NoError(t, err)

	require.NotNil(t, bom.Components)
	require.Len(t, *bom.Components, 1)
	assert.Equal(t, "github.com/direct/dep", (*bom.Components)[0].Name.String())

	bom, err = ToBom(testSource(), Config{})
	require.NoError(t, err)
	require.NotNil(t, bom.Components)
	assert.Len(t, *bom.Components, 2)
}

func TestToBomRecordsDirectDependencyGraph(t *testing.T) {
	bom, err := ToBom(testSource(), Config{})
	require.NoError(t, err)

	require.Len(t, bom.Dependencies, 1)
	require.NotNil(t, bom.Metadata.Component.BomRef)
	assert.Equal(t, *bom.Metadata.Component.BomRef, bom.Dependencies[0].Ref)

	require.NotNil(t, bom.Components)
	var directRef string
	for _, component := range *bom.Components {
		if component.Name.String() == "github.com/direct/dep" {
			directRef = *component.BomRef
		}
	}
	assert.Equal(t, []string{directRef}, bom.Dependencies[0].DependsOn)
}

func TestToBomLicenseHandling(t *testing.T) {
	source := testSource()
	source.packages[0].License = "MIT OR "

	_, err := ToBom(source, Config{LicenseStrict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid license expression")

	bom, err := ToBom(source, Config{})
	require.NoError(t, err)
	require.NotNil(t, bom.Components)

	licenses := (*bom.Components)[0].Licenses
	require.Len(t, licenses, 1)
	require.NotNil(t, licenses[0].License)
	require.NotNil(t, licenses[0].License.Identifier.Name)
	assert.Equal(t, "MIT OR ", licenses[0].License.Identifier.Name.String())
	assert.Nil(t, licenses[0].Expression)
}

func TestToBomValidLicenseBecomesExpression(t *testing.T) {
	bom, err := ToBom(testSource(), Config{})
	require.NoError(t, err)

	licenses := (*bom.Components)[0].Licenses
	require.Len(t, licenses, 1)
	require.NotNil(t, licenses[0].Expression)
	assert.Equal(t, "MIT", licenses[0].Expression.String())
}

func TestToBomDropsUnparsableURLs(t *testing.T) {
	source := testSource()
	source.packages[0].Homepage = "not a url"
	source.packages[0].Repository = "https://github.com/direct/dep"

	bom, err := ToBom(source, Config{})
	require.NoError(t, err)

	refs := (*bom.Components)[0].ExternalReferences
	require.Len(t, refs, 1)
	assert.Equal(t, model.ExternalReferenceVcs, refs[0].Type)
	assert.Equal(t, "https://github.com/direct/dep", refs[0].URL.String())
}

func TestToBomPropagatesSourceErrors(t *testing.T) {
	_, err := ToBom(stubSource{mainErr: assert.AnError}, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main package")

	_, err = ToBom(stubSource{pkgsErr: assert.AnError}, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate packages")
}

func TestToBomJoinsAuthors(t *testing.T) {
	source := testSource()
	source.packages[0].Authors = []string{"Ada Lovelace", "Alan Turing"}

	bom, err := ToBom(source, Config{})
	require.NoError(t, err)

	author := (*bom.Components)[0].Author
	require.NotNil(t, author)
	assert.Equal(t, "Ada Lovelace, Alan Turing", author.String())
}

func TestToBomProducesValidDocument(t *testing.T) {
	bom, err := ToBom(testSource(), Config{ToolName: "gobom", ToolVersion: "0.1.0"})
	require.NoError(t, err)

	result := bom.Validate()
	assert.True(t, result.Passed(), "reasons: %+v", result.Reasons())
}
