package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

func TestNewNormalizedString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain string untouched",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "crlf becomes one space",
			input:    "hello\r\nworld",
			expected: "hello world",
		},
		{
			name:     "cr becomes a space",
			input:    "hello\rworld",
			expected: "hello world",
		},
		{
			name:     "lf becomes a space",
			input:    "hello\nworld",
			expected: "hello world",
		},
		{
			name:     "tab becomes a space",
			input:    "hello\tworld",
			expected: "hello world",
		},
		{
			name:     "mixed control characters",
			input:    "a\r\nb\rc\nd\te",
			expected: "a b c d e",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, NewNormalizedString(test.input).String())
		})
	}
}

func TestNewNormalizedStringIsIdempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"with\r\nnewline",
		"with\ttab",
		"\r\n\r\n",
		"",
	}
	for _, input := range inputs {
		once := NewNormalizedString(input)
		twice := NewNormalizedString(once.String())
		assert.Equal(t, once, twice, "normalizing twice changed the value for %q", input)
	}
}

func TestNormalizedStringValidate(t *testing.T) {
	clean := NewNormalizedString("has\nnewline")
	assert.True(t, clean.Validate(spec.V1_5, validate.NewContext()).Passed())

	dirty := NormalizedStringUnchecked("has\nnewline")
	result := dirty.Validate(spec.V1_5, validate.NewContext())
	assert.False(t, result.Passed())
}
