package gomod

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainPackage(t *testing.T) {
	source, err := NewSource(filepath.Join("test-fixtures", "simple", "go.mod"))
	require.NoError(t, err)

	main, err := source.Main()
	require.NoError(t, err)

	assert.Equal(t, "github.com/example/simple", main.Name)
	assert.Equal(t, "(devel)", main.Version)
	assert.Equal(t, "golang", main.PurlType)
	assert.Equal(t, "https://github.com/example/simple", main.Repository)
	assert.True(t, main.Application)
}

func TestMainPackageWithoutBinaryTarget(t *testing.T) {
	source, err := NewSource(filepath.Join("test-fixtures", "library", "go.mod"))
	require.NoError(t, err)

	main, err := source.Main()
	require.NoError(t, err)

	assert.Equal(t, "gitlab.com/example/library", main.Name)
	assert.Equal(t, "https://gitlab.com/example/library", main.Repository)
	assert.False(t, main.Application)
}

func TestMainRequiresModuleDirective(t *testing.T) {
	source, err := NewSource(filepath.Join("test-fixtures", "no-module", "go.mod"))
	require.NoError(t, err)

	_, err = source.Main()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no module directive")
}

func TestPackagesPreserveOrderAndIndirectFlag(t *testing.T) {
	source, err := NewSource(filepath.Join("test-fixtures", "simple", "go.mod"))
	require.NoError(t, err)

	packages, err := source.Packages()
	require.NoError(t, err)
	require.Len(t, packages, 2)

	assert.Equal(t, "github.com/sirupsen/logrus", packages[0].Name)
	assert.Equal(t, "v1.9.0", packages[0].Version)
	assert.False(t, packages[0].Indirect)

	assert.Equal(t, "golang.org/x/sys", packages[1].Name)
	assert.True(t, packages[1].Indirect)
}

func TestNewSourceErrors(t *testing.T) {
	_, err := NewSource(filepath.Join("test-fixtures", "does-not-exist", "go.mod"))
	assert.Error(t, err)
}

func TestRepositoryFor(t *testing.T) {
	tests := []struct {
		modulePath string
		expected   string
	}{
		{"github.com/spf13/cobra", "https://github.com/spf13/cobra"},
		{"gitlab.com/group/project", "https://gitlab.com/group/project"},
		{"bitbucket.org/team/repo", "https://bitbucket.org/team/repo"},
		{"golang.org/x/mod", ""},
		{"example.com/internal/tool", ""},
	}
	for _, test := range tests {
		t.Run(test.modulePath, func(t *testing.T) {
			assert.Equal(t, test.expected, repositoryFor(test.modulePath))
		})
	}
}
