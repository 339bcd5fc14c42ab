// Package v13 maps the version-independent document model onto the
// CycloneDX 1.3 wire formats. Fields introduced in later spec revisions
// (vulnerabilities, signatures, formulation) have no representation here
// and are silently dropped on write.
package v13

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

const specVersion = spec.V1_3

type bom struct {
	XMLName            xml.Name             `json:"-" xml:"bom"`
	XMLNamespace       string               `json:"-" xml:"xmlns,attr"`
	BomFormat          string               `json:"bomFormat" xml:"-"`
	SpecVersion        string               `json:"specVersion" xml:"-"`
	SerialNumber       string               `json:"serialNumber,omitempty" xml:"serialNumber,attr,omitempty"`
	Version            int                  `json:"version" xml:"version,attr,omitempty"`
	Metadata           *metadata            `json:"metadata,omitempty" xml:"metadata,omitempty"`
	Components         *[]component         `json:"components,omitempty" xml:"components>component,omitempty"`
	Services           *[]service           `json:"services,omitempty" xml:"services>service,omitempty"`
	ExternalReferences *[]externalReference `json:"externalReferences,omitempty" xml:"externalReferences>reference,omitempty"`
	Dependencies       *dependencies        `json:"dependencies,omitempty" xml:"dependencies,omitempty"`
	Compositions       *[]composition       `json:"compositions,omitempty" xml:"compositions>composition,omitempty"`
	Properties         *[]property          `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

// check enforces the schema's required attributes and elements after a lax
// decode.
func (b *bom) check() error {
	if b.Metadata != nil {
		if err := b.Metadata.check(); err != nil {
			return err
		}
	}
	if b.Components != nil {
		for _, c := range *b.Components {
			if err := c.check(); err != nil {
				return err
			}
		}
	}
	if b.Services != nil {
		for _, s := range *b.Services {
			if err := s.check(); err != nil {
				return err
			}
		}
	}
	if b.ExternalReferences != nil {
		for _, ref := range *b.ExternalReferences {
			if err := ref.check(); err != nil {
				return err
			}
		}
	}
	if b.Properties != nil {
		for _, p := range *b.Properties {
			if err := p.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *bom) toModel() model.Bom {
	out := model.Bom{
		SpecVersion:        specVersion,
		Version:            b.Version,
		Metadata:           metadataToModel(b.Metadata),
		Components:         componentsToModel(b.Components),
		Services:           servicesToModel(b.Services),
		ExternalReferences: externalReferencesToModel(b.ExternalReferences),
		Dependencies:       dependenciesToModel(b.Dependencies),
		Compositions:       compositionsToModel(b.Compositions),
		Properties:         propertiesToModel(b.Properties),
	}
	if out.Version == 0 {
		out.Version = 1
	}
	if b.SerialNumber != "" {
		serial := model.UrnUUIDUnchecked(b.SerialNumber)
		out.SerialNumber = &serial
	}
	return out
}

func toWire(b model.Bom) *bom {
	doc := bom{
		Version:            b.Version,
		Metadata:           metadataToWire(b.Metadata),
		Components:         componentsToWire(b.Components),
		Services:           servicesToWire(b.Services),
		ExternalReferences: externalReferencesToWire(b.ExternalReferences),
		Dependencies:       dependenciesToWire(b.Dependencies),
		Compositions:       compositionsToWire(b.Compositions),
		Properties:         propertiesToWire(b.Properties),
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	if b.SerialNumber != nil {
		doc.SerialNumber = b.SerialNumber.String()
	}
	return &doc
}

// ReadXML parses a CycloneDX 1.3 XML document. Values are preserved as
// written; well-formedness of enums and formats is left to validation.
func ReadXML(r io.Reader) (model.Bom, error) {
	var doc bom
	if err := xmlio.ReadDocument(r, "bom", specVersion.XMLNamespace(), &doc); err != nil {
		return model.Bom{}, err
	}
	if err := doc.check(); err != nil {
		return model.Bom{}, err
	}
	return doc.toModel(), nil
}

// WriteXML serializes the document as CycloneDX 1.3 XML. Model fields from
// newer spec revisions have no wire mapping here and are dropped.
func WriteXML(b model.Bom, w io.Writer) error {
	doc := toWire(b)
	doc.XMLNamespace = specVersion.XMLNamespace()
	return xmlio.WriteDocument(w, "bom", doc)
}

// ReadJSON parses a CycloneDX 1.3 JSON document. Unknown keys are ignored;
// bomFormat and specVersion must match when present.
func ReadJSON(r io.Reader) (model.Bom, error) {
	var doc bom
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.Bom{}, err
	}
	if doc.BomFormat != "" && doc.BomFormat != spec.BomFormat {
		return model.Bom{}, fmt.Errorf("unexpected bomFormat %q, expected %q", doc.BomFormat, spec.BomFormat)
	}
	if doc.SpecVersion != "" && doc.SpecVersion != specVersion.String() {
		return model.Bom{}, fmt.Errorf("unexpected specVersion %q, expected %q", doc.SpecVersion, specVersion.String())
	}
	return doc.toModel(), nil
}

// WriteJSON serializes the document as compact CycloneDX 1.3 JSON.
func WriteJSON(b model.Bom, w io.Writer) error {
	doc := toWire(b)
	doc.BomFormat = spec.BomFormat
	doc.SpecVersion = specVersion.String()
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
