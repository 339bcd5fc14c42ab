/*
Package gomod provides package records from a go.mod manifest.

A go.mod file carries no license or author information, so those fields are
left empty; validation and enrichment are up to the caller.
*/
package gomod

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/gobom/cyclonedx/cyclonedx/provider"
	"github.com/gobom/cyclonedx/internal/log"
)

const purlType = "golang"

// mainVersion stands in for the version of the module under inspection,
// which go.mod does not record. Matches what runtime/debug reports for
// source builds.
const mainVersion = "(devel)"

// Source reads package records from a parsed go.mod file.
type Source struct {
	file *modfile.File
	dir  string
}

// NewSource parses the manifest at the given path.
func NewSource(manifestPath string) (*Source, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest %s: %w", manifestPath, err)
	}
	file, err := modfile.Parse(manifestPath, data, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to parse manifest %s: %w", manifestPath, err)
	}
	return &Source{
		file: file,
		dir:  filepath.Dir(manifestPath),
	}, nil
}

// Main returns the record for the module the manifest declares.
func (s *Source) Main() (provider.Package, error) {
	if s.file.Module == nil {
		return provider.Package{}, fmt.Errorf("manifest has no module directive")
	}
	path := s.file.Module.Mod.Path
	return provider.Package{
		Name:        path,
		Version:     mainVersion,
		PurlType:    purlType,
		Repository:  repositoryFor(path),
		Application: s.hasMainPackage(),
	}, nil
}

// Packages returns one record per require directive, in manifest order.
func (s *Source) Packages() ([]provider.Package, error) {
	packages := make([]provider.Package, 0, len(s.file.Require))
	for _, require := range s.file.Require {
		packages = append(packages, provider.Package{
			Name:       require.Mod.Path,
			Version:    require.Mod.Version,
			PurlType:   purlType,
			Repository: repositoryFor(require.Mod.Path),
			Indirect:   require.Indirect,
		})
	}
	return packages, nil
}

// repositoryFor guesses the repository URL for module paths rooted at a
// well-known VCS host.
func repositoryFor(modulePath string) string {
	for _, host := range []string{"github.com/", "gitlab.com/", "bitbucket.org/"} {
		if strings.HasPrefix(modulePath, host) {
			return "https://" + modulePath
		}
	}
	return ""
}

// hasMainPackage reports whether the module directory appears to contain a
// binary target, checking the module root and the conventional cmd/ layout.
func (s *Source) hasMainPackage() bool {
	patterns := []string{
		filepath.Join(s.dir, "*.go"),
		filepath.Join(s.dir, "cmd", "*", "*.go"),
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, match := range matches {
			if declaresPackageMain(match) {
				return true
			}
		}
	}
	return false
}

func declaresPackageMain(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		log.Debugf("unable to open %s while looking for a main package: %v", path, err)
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "package ") {
			return line == "package main"
		}
	}
	return false
}
