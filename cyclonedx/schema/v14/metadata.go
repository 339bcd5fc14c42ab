package v14

import "github.com/gobom/cyclonedx/cyclonedx/model"

type metadata struct {
	Timestamp   string                   `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Tools       *[]tool                  `json:"tools,omitempty" xml:"tools>tool,omitempty"`
	Authors     *[]organizationalContact `json:"authors,omitempty" xml:"authors>author,omitempty"`
	Component   *component               `json:"component,omitempty" xml:"component,omitempty"`
	Manufacture *organizationalEntity    `json:"manufacture,omitempty" xml:"manufacture,omitempty"`
	Supplier    *organizationalEntity    `json:"supplier,omitempty" xml:"supplier,omitempty"`
	Licenses    *licenses                `json:"licenses,omitempty" xml:"licenses,omitempty"`
	Properties  *[]property              `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func (m *metadata) check() error {
	if m.Component != nil {
		return m.Component.check()
	}
	return nil
}

func metadataToWire(m *model.Metadata) *metadata {
	if m == nil {
		return nil
	}
	wire := metadata{
		Timestamp:   dateTimeValue(m.Timestamp),
		Tools:       toolsToWire(m.Tools),
		Authors:     contactsToWire(m.Authors),
		Manufacture: entityToWire(m.Manufacture),
		Supplier:    entityToWire(m.Supplier),
		Licenses:    licensesToWire(m.Licenses),
		Properties:  propertiesToWire(m.Properties),
	}
	if m.Component != nil {
		c := componentToWire(*m.Component)
		wire.Component = &c
	}
	return &wire
}

func metadataToModel(m *metadata) *model.Metadata {
	if m == nil {
		return nil
	}
	out := model.Metadata{
		Timestamp:   optDateTime(m.Timestamp),
		Tools:       toolsToModel(m.Tools),
		Authors:     contactsToModel(m.Authors),
		Manufacture: entityToModel(m.Manufacture),
		Supplier:    entityToModel(m.Supplier),
		Licenses:    licensesToModel(m.Licenses),
		Properties:  propertiesToModel(m.Properties),
	}
	if m.Component != nil {
		c := componentToModel(*m.Component)
		out.Component = &c
	}
	return &out
}
