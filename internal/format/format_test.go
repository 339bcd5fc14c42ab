package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", JSONFormat},
		{"JSON", JSONFormat},
		{"xml", XMLFormat},
		{"XML", XMLFormat},
		{"", UnknownFormat},
		{"yaml", UnknownFormat},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, Parse(test.input))
		})
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"bom.xml", XMLFormat},
		{"BOM.XML", XMLFormat},
		{"bom.json", JSONFormat},
		{"bom", JSONFormat},
		{"", JSONFormat},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			assert.Equal(t, test.expected, FromFilename(test.path))
		})
	}
}
