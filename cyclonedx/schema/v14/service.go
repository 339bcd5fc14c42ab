package v14

import (
	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

type dataClassification struct {
	Flow           string `json:"flow" xml:"flow,attr"`
	Classification string `json:"classification" xml:",chardata"`
}

type service struct {
	BomRef             string                `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Provider           *organizationalEntity `json:"provider,omitempty" xml:"provider,omitempty"`
	Group              string                `json:"group,omitempty" xml:"group,omitempty"`
	Name               string                `json:"name" xml:"name"`
	Version            string                `json:"version,omitempty" xml:"version,omitempty"`
	Description        string                `json:"description,omitempty" xml:"description,omitempty"`
	Endpoints          *[]string             `json:"endpoints,omitempty" xml:"endpoints>endpoint,omitempty"`
	Authenticated      *bool                 `json:"authenticated,omitempty" xml:"authenticated,omitempty"`
	XTrustBoundary     *bool                 `json:"x-trust-boundary,omitempty" xml:"x-trust-boundary,omitempty"`
	Data               *[]dataClassification `json:"data,omitempty" xml:"data>classification,omitempty"`
	Licenses           *licenses             `json:"licenses,omitempty" xml:"licenses,omitempty"`
	ExternalReferences *[]externalReference  `json:"externalReferences,omitempty" xml:"externalReferences>reference,omitempty"`
	Properties         *[]property           `json:"properties,omitempty" xml:"properties>property,omitempty"`
	Services           *[]service            `json:"services,omitempty" xml:"services>service,omitempty"`
	Signature          *signature            `json:"signature,omitempty" xml:"-"`
}

func (s service) check() error {
	if s.Name == "" {
		return &xmlio.RequiredDataMissingError{RequiredField: "name", Element: "service"}
	}
	if s.ExternalReferences != nil {
		for _, ref := range *s.ExternalReferences {
			if err := ref.check(); err != nil {
				return err
			}
		}
	}
	if s.Services != nil {
		for _, nested := range *s.Services {
			if err := nested.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func serviceToWire(s model.Service) service {
	wire := service{
		BomRef:             stringValue(s.BomRef),
		Provider:           entityToWire(s.Provider),
		Group:              normalizedValue(s.Group),
		Name:               s.Name.String(),
		Version:            normalizedValue(s.Version),
		Description:        normalizedValue(s.Description),
		Authenticated:      s.Authenticated,
		XTrustBoundary:     s.XTrustBoundary,
		Licenses:           licensesToWire(s.Licenses),
		ExternalReferences: externalReferencesToWire(s.ExternalReferences),
		Properties:         propertiesToWire(s.Properties),
		Services:           servicesToWire(s.Services),
		Signature:          signatureToWire(s.Signature),
	}
	if len(s.Endpoints) > 0 {
		endpoints := make([]string, 0, len(s.Endpoints))
		for _, endpoint := range s.Endpoints {
			endpoints = append(endpoints, endpoint.String())
		}
		wire.Endpoints = &endpoints
	}
	if len(s.Data) > 0 {
		data := make([]dataClassification, 0, len(s.Data))
		for _, d := range s.Data {
			data = append(data, dataClassification{Flow: d.Flow.String(), Classification: d.Classification.String()})
		}
		wire.Data = &data
	}
	return wire
}

func serviceToModel(s service) model.Service {
	out := model.Service{
		BomRef:             optString(s.BomRef),
		Provider:           entityToModel(s.Provider),
		Group:              optNormalized(s.Group),
		Name:               model.NormalizedStringUnchecked(s.Name),
		Version:            optNormalized(s.Version),
		Description:        optNormalized(s.Description),
		Authenticated:      s.Authenticated,
		XTrustBoundary:     s.XTrustBoundary,
		Licenses:           licensesToModel(s.Licenses),
		ExternalReferences: externalReferencesToModel(s.ExternalReferences),
		Properties:         propertiesToModel(s.Properties),
		Services:           servicesToModel(s.Services),
		Signature:          signatureToModel(s.Signature),
	}
	if s.Endpoints != nil {
		for _, endpoint := range *s.Endpoints {
			out.Endpoints = append(out.Endpoints, model.UriUnchecked(endpoint))
		}
	}
	if s.Data != nil {
		for _, d := range *s.Data {
			out.Data = append(out.Data, model.DataClassification{
				Flow:           model.DataFlowType(d.Flow),
				Classification: model.NormalizedStringUnchecked(d.Classification),
			})
		}
	}
	return out
}

func servicesToWire(services *model.Services) *[]service {
	if services == nil || len(*services) == 0 {
		return nil
	}
	wire := make([]service, 0, len(*services))
	for _, s := range *services {
		wire = append(wire, serviceToWire(s))
	}
	return &wire
}

func servicesToModel(services *[]service) *model.Services {
	if services == nil {
		return nil
	}
	out := make(model.Services, 0, len(*services))
	for _, s := range *services {
		out = append(out, serviceToModel(s))
	}
	return &out
}
