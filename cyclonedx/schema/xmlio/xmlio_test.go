package xmlio

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNamespace = "http://cyclonedx.org/schema/bom/1.5"

type testDoc struct {
	XMLName xml.Name `xml:"bom"`
	Version int      `xml:"version,attr,omitempty"`
	Name    string   `xml:"name,omitempty"`
}

func TestReadDocument(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<!-- a leading comment -->
<bom xmlns="http://cyclonedx.org/schema/bom/1.5" version="3"><name>demo</name></bom>`

	var doc testDoc
	err := ReadDocument(strings.NewReader(input), "bom", testNamespace, &doc)

	require.NoError(t, err)
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, "demo", doc.Name)
}

func TestReadDocumentRejectsWrongNamespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "foreign namespace",
			input: `<bom xmlns="http://example.com/other">ignored</bom>`,
		},
		{
			name:  "missing namespace",
			input: `<bom version="1"/>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var doc testDoc
			err := ReadDocument(strings.NewReader(test.input), "bom", testNamespace, &doc)

			var nsErr *InvalidNamespaceError
			require.ErrorAs(t, err, &nsErr)
			assert.Equal(t, testNamespace, nsErr.ExpectedNamespace)
		})
	}
}

func TestReadDocumentRejectsForeignRoot(t *testing.T) {
	input := `<notbom xmlns="http://cyclonedx.org/schema/bom/1.5"/>`

	var doc testDoc
	err := ReadDocument(strings.NewReader(input), "bom", testNamespace, &doc)

	var unexpected *UnexpectedElementError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "bom", unexpected.Expected)
	assert.Equal(t, "notbom", unexpected.Element)
}

func TestReadDocumentSkipsUnknownChildren(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.5"><mystery><deep/></mystery><name>demo</name></bom>`

	var doc testDoc
	err := ReadDocument(strings.NewReader(input), "bom", testNamespace, &doc)

	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Name)
}

func TestReadDocumentReportsTypeMismatch(t *testing.T) {
	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.5" version="not-a-number"/>`

	var doc testDoc
	err := ReadDocument(strings.NewReader(input), "bom", testNamespace, &doc)

	var parseErr *InvalidParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "number", parseErr.DataType)
}

func TestWriteDocumentTagSymmetry(t *testing.T) {
	var sb strings.Builder
	err := WriteDocument(&sb, "bom", testDoc{Version: 1})
	require.NoError(t, err)

	output := sb.String()
	assert.True(t, strings.HasPrefix(output, xml.Header))
	assert.True(t, strings.HasSuffix(output, "\n"))

	decoder := xml.NewDecoder(strings.NewReader(output))
	depth := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	assert.Equal(t, 0, depth)
}

type failingMarshaler struct{}

func (failingMarshaler) MarshalXML(*xml.Encoder, xml.StartElement) error {
	return assert.AnError
}

func TestWriteDocumentWritesNothingOnMarshalFailure(t *testing.T) {
	var sb strings.Builder
	err := WriteDocument(&sb, "bom", failingMarshaler{})

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Empty(t, sb.String())
}

func TestSkipDiscardsSubtree(t *testing.T) {
	input := `<root><mystery><deep><deeper/></deep></mystery><name>demo</name></root>`

	decoder := xml.NewDecoder(strings.NewReader(input))
	// read past <root> and into <mystery>
	for i := 0; i < 2; i++ {
		_, err := decoder.Token()
		require.NoError(t, err)
	}
	require.NoError(t, Skip(decoder))

	token, err := decoder.Token()
	require.NoError(t, err)
	next, ok := token.(xml.StartElement)
	require.True(t, ok)
	assert.Equal(t, "name", next.Name.Local)
}
