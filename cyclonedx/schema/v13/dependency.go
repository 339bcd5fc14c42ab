package v13

import (
	"encoding/xml"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

type dependency struct {
	Ref       string    `json:"ref"`
	DependsOn *[]string `json:"dependsOn,omitempty"`
}

// dependencies flattens the XML nesting (a ref attribute plus nested
// single-level <dependency ref=""/> children) into the same shape the JSON
// format uses, so both formats share one wire type.
type dependencies []dependency

func (d dependencies) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(d) == 0 {
		return nil
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, dep := range d {
		depStart := xml.StartElement{
			Name: xml.Name{Local: "dependency"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "ref"}, Value: dep.Ref}},
		}
		if err := e.EncodeToken(depStart); err != nil {
			return err
		}
		if dep.DependsOn != nil {
			for _, ref := range *dep.DependsOn {
				child := xml.StartElement{
					Name: xml.Name{Local: "dependency"},
					Attr: []xml.Attr{{Name: xml.Name{Local: "ref"}, Value: ref}},
				}
				if err := e.EncodeToken(child); err != nil {
					return err
				}
				if err := e.EncodeToken(child.End()); err != nil {
					return err
				}
			}
		}
		if err := e.EncodeToken(depStart.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func (d *dependencies) UnmarshalXML(dec *xml.Decoder, _ xml.StartElement) error {
	for {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "dependency" {
				if err := xmlio.Skip(dec); err != nil {
					return err
				}
				continue
			}
			dep, err := readDependency(dec, t)
			if err != nil {
				return err
			}
			*d = append(*d, dep)
		case xml.EndElement:
			return nil
		}
	}
}

func readDependency(dec *xml.Decoder, start xml.StartElement) (dependency, error) {
	var dep dependency
	for _, attr := range start.Attr {
		if attr.Name.Local == "ref" {
			dep.Ref = attr.Value
		}
	}
	if dep.Ref == "" {
		return dep, &xmlio.RequiredAttributeMissingError{Attribute: "ref", Element: "dependency"}
	}
	for {
		token, err := dec.Token()
		if err != nil {
			return dep, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "dependency" {
				if err := xmlio.Skip(dec); err != nil {
					return dep, err
				}
				continue
			}
			var childRef string
			for _, attr := range t.Attr {
				if attr.Name.Local == "ref" {
					childRef = attr.Value
				}
			}
			if childRef == "" {
				return dep, &xmlio.RequiredAttributeMissingError{Attribute: "ref", Element: "dependency"}
			}
			if err := xmlio.Skip(dec); err != nil {
				return dep, err
			}
			if dep.DependsOn == nil {
				dep.DependsOn = &[]string{}
			}
			*dep.DependsOn = append(*dep.DependsOn, childRef)
		case xml.EndElement:
			return dep, nil
		}
	}
}

func dependenciesToWire(deps model.Dependencies) *dependencies {
	if len(deps) == 0 {
		return nil
	}
	wire := make(dependencies, 0, len(deps))
	for _, dep := range deps {
		entry := dependency{Ref: dep.Ref}
		if len(dep.DependsOn) > 0 {
			dependsOn := append([]string(nil), dep.DependsOn...)
			entry.DependsOn = &dependsOn
		}
		wire = append(wire, entry)
	}
	return &wire
}

func dependenciesToModel(deps *dependencies) model.Dependencies {
	if deps == nil {
		return nil
	}
	out := make(model.Dependencies, 0, len(*deps))
	for _, dep := range *deps {
		entry := model.Dependency{Ref: dep.Ref}
		if dep.DependsOn != nil {
			entry.DependsOn = append([]string(nil), *dep.DependsOn...)
		}
		out = append(out, entry)
	}
	return out
}
