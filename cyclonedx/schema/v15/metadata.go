package v15

import "github.com/gobom/cyclonedx/cyclonedx/model"

type lifecycle struct {
	Phase       string `json:"phase,omitempty" xml:"phase,omitempty"`
	Name        string `json:"name,omitempty" xml:"name,omitempty"`
	Description string `json:"description,omitempty" xml:"description,omitempty"`
}

func lifecyclesToWire(lifecycles []model.Lifecycle) *[]lifecycle {
	if len(lifecycles) == 0 {
		return nil
	}
	wire := make([]lifecycle, 0, len(lifecycles))
	for _, l := range lifecycles {
		entry := lifecycle{
			Name:        normalizedValue(l.Name),
			Description: normalizedValue(l.Description),
		}
		if l.Phase != nil {
			entry.Phase = l.Phase.String()
		}
		wire = append(wire, entry)
	}
	return &wire
}

func lifecyclesToModel(lifecycles *[]lifecycle) []model.Lifecycle {
	if lifecycles == nil {
		return nil
	}
	out := make([]model.Lifecycle, 0, len(*lifecycles))
	for _, l := range *lifecycles {
		entry := model.Lifecycle{
			Name:        optNormalized(l.Name),
			Description: optNormalized(l.Description),
		}
		if l.Phase != "" {
			phase := model.LifecyclePhase(l.Phase)
			entry.Phase = &phase
		}
		out = append(out, entry)
	}
	return out
}

type metadata struct {
	Timestamp   string                   `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Lifecycles  *[]lifecycle             `json:"lifecycles,omitempty" xml:"lifecycles>lifecycle,omitempty"`
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
		Lifecycles:  lifecyclesToWire(m.Lifecycles),
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
		Lifecycles:  lifecyclesToModel(m.Lifecycles),
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
