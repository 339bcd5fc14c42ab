package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextString(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		expected string
	}{
		{
			name:     "empty context",
			ctx:      NewContext(),
			expected: "",
		},
		{
			name:     "single struct component",
			ctx:      NewContext().Extend(Struct("Bom", "metadata")),
			expected: "metadata",
		},
		{
			name:     "struct then array",
			ctx:      NewContext().Extend(Struct("Bom", "components"), Array(2)),
			expected: "components[2]",
		},
		{
			name: "deep path",
			ctx: NewContext().
				Extend(Struct("Bom", "components"), Array(2)).
				Extend(Struct("Component", "licenses")).
				Extend(Struct("Licenses", "inner"), Array(0)).
				Extend(Struct("LicenseChoice", "expression")),
			expected: "components[2].licenses.inner[0].expression",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.ctx.String())
		})
	}
}

func TestContextExtendDoesNotMutateTheReceiver(t *testing.T) {
	base := NewContext().Extend(Struct("Bom", "components"))

	a := base.Extend(Array(0))
	b := base.Extend(Array(1))

	assert.Equal(t, "components[0]", a.String())
	assert.Equal(t, "components[1]", b.String())
	assert.Equal(t, "components", base.String())
}

func TestResultMergePreservesOrder(t *testing.T) {
	ctx := NewContext()
	merged := Pass().
		Merge(Fail("first", ctx)).
		Merge(Pass()).
		Merge(Fail("second", ctx))

	require.False(t, merged.Passed())
	reasons := merged.Reasons()
	require.Len(t, reasons, 2)
	assert.Equal(t, "first", reasons[0].Message)
	assert.Equal(t, "second", reasons[1].Message)
}

func TestFailUnknownMessage(t *testing.T) {
	result := FailUnknown("HashAlgorithm", NewContext())
	require.Len(t, result.Reasons(), 1)
	assert.Equal(t, "Unknown HashAlgorithm found", result.Reasons()[0].Message)
}

func TestZeroResultPasses(t *testing.T) {
	var result Result
	assert.True(t, result.Passed())
	assert.Empty(t, result.Reasons())
}
