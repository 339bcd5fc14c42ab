package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.3", V1_3.String())
	assert.Equal(t, "1.4", V1_4.String())
	assert.Equal(t, "1.5", V1_5.String())
}

func TestVersionXMLNamespace(t *testing.T) {
	assert.Equal(t, "http://cyclonedx.org/schema/bom/1.4", V1_4.XMLNamespace())
}

func TestParse(t *testing.T) {
	for _, version := range All() {
		parsed, err := Parse(version.String())
		require.NoError(t, err)
		assert.Equal(t, version, parsed)
	}

	_, err := Parse("2.0")
	assert.Error(t, err)
}
