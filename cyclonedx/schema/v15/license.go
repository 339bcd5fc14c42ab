package v15

import (
	"encoding/xml"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

type license struct {
	ID   string        `json:"id,omitempty" xml:"id,omitempty"`
	Name string        `json:"name,omitempty" xml:"name,omitempty"`
	Text *attachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL  string        `json:"url,omitempty" xml:"url,omitempty"`
}

type licenseChoice struct {
	License    *license `json:"license,omitempty"`
	Expression string   `json:"expression,omitempty"`
}

// licenses is a heterogeneous sequence: each entry is either a <license>
// element or an <expression> element, so XML needs a hand-rolled codec.
type licenses []licenseChoice

func (l licenses) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(l) == 0 {
		return nil
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, choice := range l {
		switch {
		case choice.License != nil:
			if err := e.EncodeElement(choice.License, xml.StartElement{Name: xml.Name{Local: "license"}}); err != nil {
				return err
			}
		case choice.Expression != "":
			if err := e.EncodeElement(choice.Expression, xml.StartElement{Name: xml.Name{Local: "expression"}}); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(start.End())
}

func (l *licenses) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "license":
				var lic license
				if err := d.DecodeElement(&lic, &t); err != nil {
					return err
				}
				*l = append(*l, licenseChoice{License: &lic})
			case "expression":
				var expression string
				if err := d.DecodeElement(&expression, &t); err != nil {
					return err
				}
				*l = append(*l, licenseChoice{Expression: expression})
			default:
				if err := xmlio.Skip(d); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func licensesToWire(choices model.Licenses) *licenses {
	if len(choices) == 0 {
		return nil
	}
	wire := make(licenses, 0, len(choices))
	for _, choice := range choices {
		switch {
		case choice.License != nil:
			lic := license{
				Text: attachedTextToWire(choice.License.Text),
				URL:  uriValue(choice.License.URL),
			}
			if choice.License.Identifier.SpdxID != nil {
				lic.ID = choice.License.Identifier.SpdxID.String()
			}
			lic.Name = normalizedValue(choice.License.Identifier.Name)
			wire = append(wire, licenseChoice{License: &lic})
		case choice.Expression != nil:
			wire = append(wire, licenseChoice{Expression: choice.Expression.String()})
		}
	}
	return &wire
}

func licensesToModel(choices *licenses) model.Licenses {
	if choices == nil {
		return nil
	}
	out := make(model.Licenses, 0, len(*choices))
	for _, choice := range *choices {
		switch {
		case choice.License != nil:
			lic := model.License{
				Text: attachedTextToModel(choice.License.Text),
				URL:  optUri(choice.License.URL),
			}
			if choice.License.ID != "" {
				id := model.SpdxIdentifier(choice.License.ID)
				lic.Identifier.SpdxID = &id
			} else {
				lic.Identifier.Name = optNormalized(choice.License.Name)
			}
			out = append(out, model.LicenseChoice{License: &lic})
		case choice.Expression != "":
			expression := model.LicenseExpressionUnchecked(choice.Expression)
			out = append(out, model.LicenseChoice{Expression: &expression})
		}
	}
	return out
}
