package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

func TestHashValidate(t *testing.T) {
	tests := []struct {
		name     string
		hash     Hash
		failures int
	}{
		{
			name:     "well-known algorithm with matching digest",
			hash:     Hash{Alg: HashAlgorithmMD5, Content: HashValue(strings.Repeat("a1", 16))},
			failures: 0,
		},
		{
			name:     "well-known algorithm with wrong digest length",
			hash:     Hash{Alg: HashAlgorithmSHA256, Content: HashValue("abcd")},
			failures: 1,
		},
		{
			name:     "unknown algorithm with plausible digest",
			hash:     Hash{Alg: HashAlgorithm("FOO-999"), Content: HashValue(strings.Repeat("a1", 16))},
			failures: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.hash.Validate(spec.V1_3, validate.NewContext())
			assert.Len(t, result.Reasons(), test.failures)
		})
	}
}

func TestHashesValidateReportsEveryFailureWithItsPath(t *testing.T) {
	hashes := Hashes{
		{Alg: HashAlgorithm("x"), Content: HashValue("not a hash")},
	}

	result := hashes.Validate(spec.V1_3, validate.NewContext())

	reasons := result.Reasons()
	require.Len(t, reasons, 2)
	assert.Equal(t, "Unknown HashAlgorithm found", reasons[0].Message)
	assert.Equal(t, "inner[0].alg", reasons[0].Context.String())
	assert.Equal(t, "inner[0].content", reasons[1].Context.String())
}
