/*
Package provider turns externally-sourced package listings into BOM
documents. A Source yields one record per package; ToBom assembles the
records into a Bom with the main package under metadata and the
dependencies as the component list.
*/
package provider

import (
	"fmt"
	"strings"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/internal/log"
)

// Package is a single package record as reported by a Source. Fields that
// the source cannot determine are left empty.
type Package struct {
	Name    string
	Version string
	// PurlType is the package-url ecosystem type (e.g. "golang").
	PurlType string
	// License is an SPDX license expression, when known.
	License string
	Authors []string
	// Homepage, Repository, and Documentation are URLs, when known.
	Homepage      string
	Repository    string
	Documentation string
	// Application marks a package with a binary target.
	Application bool
	// Indirect marks a transitive dependency.
	Indirect bool
}

// Source yields the package records for one module or project manifest.
type Source interface {
	// Main returns the record for the package the manifest describes.
	Main() (Package, error)
	// Packages returns the dependency records in manifest order.
	Packages() ([]Package, error)
}

// Config controls how ToBom assembles a document.
type Config struct {
	// TopLevelOnly drops indirect dependencies from the component list.
	TopLevelOnly bool
	// LicenseStrict turns a malformed license expression into a hard error
	// instead of falling back to a named license.
	LicenseStrict bool
	// ToolName and ToolVersion populate the metadata tool entry when set.
	ToolName    string
	ToolVersion string
}

// ToBom builds a BOM from the given source: a fresh serial number, the main
// package as the metadata component, and the dependencies as components.
// The direct dependencies are also recorded as the main component's
// dependency graph entry.
func ToBom(source Source, cfg Config) (model.Bom, error) {
	main, err := source.Main()
	if err != nil {
		return model.Bom{}, fmt.Errorf("unable to determine main package: %w", err)
	}
	packages, err := source.Packages()
	if err != nil {
		return model.Bom{}, fmt.Errorf("unable to enumerate packages: %w", err)
	}

	bom := model.NewBom()
	metadata := model.NewMetadata()
	if cfg.ToolName != "" {
		name := model.NewNormalizedString(cfg.ToolName)
		version := model.NewNormalizedString(cfg.ToolVersion)
		metadata.Tools = model.Tools{{Name: &name, Version: &version}}
	}

	mainComponent, err := toComponent(main, cfg.LicenseStrict)
	if err != nil {
		return model.Bom{}, err
	}
	metadata.Component = &mainComponent
	bom.Metadata = &metadata

	components := make(model.Components, 0, len(packages))
	var directRefs []string
	for _, pkg := range packages {
		if cfg.TopLevelOnly && pkg.Indirect {
			continue
		}
		component, err := toComponent(pkg, cfg.LicenseStrict)
		if err != nil {
			return model.Bom{}, err
		}
		components = append(components, component)
		if !pkg.Indirect && component.BomRef != nil {
			directRefs = append(directRefs, *component.BomRef)
		}
	}
	if len(components) > 0 {
		bom.Components = &components
	}
	if mainComponent.BomRef != nil && len(directRefs) > 0 {
		bom.Dependencies = model.Dependencies{
			{Ref: *mainComponent.BomRef, DependsOn: directRefs},
		}
	}
	return bom, nil
}

func toComponent(pkg Package, licenseStrict bool) (model.Component, error) {
	classification := model.ClassificationLibrary
	if pkg.Application {
		classification = model.ClassificationApplication
	}
	component := model.NewComponent(classification, pkg.Name, pkg.Version)

	bomRef := pkg.Name + "@" + pkg.Version
	if pkg.PurlType != "" {
		purl, err := model.NewPurl(pkg.PurlType, pkg.Name, pkg.Version)
		if err != nil {
			log.Warnf("unable to build purl for %s: %v", pkg.Name, err)
		} else {
			component.Purl = &purl
			bomRef = purl.String()
		}
	}
	component.BomRef = &bomRef

	if pkg.License != "" {
		expression, err := model.NewLicenseExpression(pkg.License)
		if err != nil {
			if licenseStrict {
				return model.Component{}, fmt.Errorf("package %s has an invalid license expression %q: %w", pkg.Name, pkg.License, err)
			}
			log.Warnf("package %s has an invalid license expression %q, keeping it as a named license", pkg.Name, pkg.License)
			name := model.NewNormalizedString(pkg.License)
			component.Licenses = model.Licenses{{License: &model.License{Identifier: model.LicenseIdentifier{Name: &name}}}}
		} else {
			component.Licenses = model.Licenses{{Expression: &expression}}
		}
	}

	if len(pkg.Authors) > 0 {
		author := model.NewNormalizedString(strings.Join(pkg.Authors, ", "))
		component.Author = &author
	}

	component.ExternalReferences = referencesFor(pkg)
	return component, nil
}

func referencesFor(pkg Package) model.ExternalReferences {
	var refs model.ExternalReferences
	add := func(refType model.ExternalReferenceType, value string) {
		if value == "" {
			return
		}
		uri, err := model.NewUri(value)
		if err != nil {
			log.Warnf("dropping invalid %s URL %q for %s: %v", refType, value, pkg.Name, err)
			return
		}
		refs = append(refs, model.ExternalReference{Type: refType, URL: uri})
	}
	add(model.ExternalReferenceWebsite, pkg.Homepage)
	add(model.ExternalReferenceVcs, pkg.Repository)
	add(model.ExternalReferenceDocumentation, pkg.Documentation)
	return refs
}
