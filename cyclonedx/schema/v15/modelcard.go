package v15

import "github.com/gobom/cyclonedx/cyclonedx/model"

type modelApproach struct {
	Type string `json:"type,omitempty" xml:"type,omitempty"`
}

type modelParameters struct {
	Approach           *modelApproach `json:"approach,omitempty" xml:"approach,omitempty"`
	Task               string         `json:"task,omitempty" xml:"task,omitempty"`
	ArchitectureFamily string         `json:"architectureFamily,omitempty" xml:"architectureFamily,omitempty"`
	ModelArchitecture  string         `json:"modelArchitecture,omitempty" xml:"modelArchitecture,omitempty"`
}

type modelCard struct {
	BomRef          string           `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	ModelParameters *modelParameters `json:"modelParameters,omitempty" xml:"modelParameters,omitempty"`
	Properties      *[]property      `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func modelCardToWire(card *model.ModelCard) *modelCard {
	if card == nil {
		return nil
	}
	wire := modelCard{
		BomRef:     stringValue(card.BomRef),
		Properties: propertiesToWire(card.Properties),
	}
	if card.ModelParameters != nil {
		parameters := modelParameters{
			Task:               normalizedValue(card.ModelParameters.Task),
			ArchitectureFamily: normalizedValue(card.ModelParameters.ArchitectureFamily),
			ModelArchitecture:  normalizedValue(card.ModelParameters.ModelArchitecture),
		}
		if card.ModelParameters.Approach != nil {
			parameters.Approach = &modelApproach{Type: card.ModelParameters.Approach.String()}
		}
		wire.ModelParameters = &parameters
	}
	return &wire
}

func modelCardToModel(card *modelCard) *model.ModelCard {
	if card == nil {
		return nil
	}
	out := model.ModelCard{
		BomRef:     optString(card.BomRef),
		Properties: propertiesToModel(card.Properties),
	}
	if card.ModelParameters != nil {
		parameters := model.ModelParameters{
			Task:               optNormalized(card.ModelParameters.Task),
			ArchitectureFamily: optNormalized(card.ModelParameters.ArchitectureFamily),
			ModelArchitecture:  optNormalized(card.ModelParameters.ModelArchitecture),
		}
		if card.ModelParameters.Approach != nil && card.ModelParameters.Approach.Type != "" {
			approach := model.ModelApproachType(card.ModelParameters.Approach.Type)
			parameters.Approach = &approach
		}
		out.ModelParameters = &parameters
	}
	return &out
}

type componentDataContents struct {
	Attachment *attachedText `json:"attachment,omitempty" xml:"attachment,omitempty"`
	URL        string        `json:"url,omitempty" xml:"url,omitempty"`
	Properties *[]property   `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

type dataGovernanceParty struct {
	Organization *organizationalEntity  `json:"organization,omitempty" xml:"organization,omitempty"`
	Contact      *organizationalContact `json:"contact,omitempty" xml:"contact,omitempty"`
}

type dataGovernance struct {
	Custodians *[]dataGovernanceParty `json:"custodians,omitempty" xml:"custodians>custodian,omitempty"`
	Stewards   *[]dataGovernanceParty `json:"stewards,omitempty" xml:"stewards>steward,omitempty"`
	Owners     *[]dataGovernanceParty `json:"owners,omitempty" xml:"owners>owner,omitempty"`
}

type componentData struct {
	BomRef         string                 `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Type           string                 `json:"type" xml:"type"`
	Name           string                 `json:"name,omitempty" xml:"name,omitempty"`
	Contents       *componentDataContents `json:"contents,omitempty" xml:"contents,omitempty"`
	Classification string                 `json:"classification,omitempty" xml:"classification,omitempty"`
	SensitiveData  *[]string              `json:"sensitiveData,omitempty" xml:"sensitiveData,omitempty"`
	Description    string                 `json:"description,omitempty" xml:"description,omitempty"`
	Governance     *dataGovernance        `json:"governance,omitempty" xml:"governance,omitempty"`
}

func governancePartiesToWire(parties []model.DataGovernanceResponsibleParty) *[]dataGovernanceParty {
	if len(parties) == 0 {
		return nil
	}
	wire := make([]dataGovernanceParty, 0, len(parties))
	for _, p := range parties {
		entry := dataGovernanceParty{Organization: entityToWire(p.Organization)}
		if p.Contact != nil {
			contact := contactToWire(*p.Contact)
			entry.Contact = &contact
		}
		wire = append(wire, entry)
	}
	return &wire
}

func governancePartiesToModel(parties *[]dataGovernanceParty) []model.DataGovernanceResponsibleParty {
	if parties == nil {
		return nil
	}
	out := make([]model.DataGovernanceResponsibleParty, 0, len(*parties))
	for _, p := range *parties {
		entry := model.DataGovernanceResponsibleParty{Organization: entityToModel(p.Organization)}
		if p.Contact != nil {
			contact := contactToModel(*p.Contact)
			entry.Contact = &contact
		}
		out = append(out, entry)
	}
	return out
}

func componentDataToWire(data *model.ComponentData) *componentData {
	if data == nil {
		return nil
	}
	wire := componentData{
		BomRef:         stringValue(data.BomRef),
		Type:           data.DataType.String(),
		Name:           normalizedValue(data.Name),
		Classification: normalizedValue(data.Classification),
		Description:    normalizedValue(data.Description),
	}
	if data.Contents != nil {
		wire.Contents = &componentDataContents{
			Attachment: attachedTextToWire(data.Contents.Attachment),
			URL:        uriValue(data.Contents.URL),
			Properties: propertiesToWire(data.Contents.Properties),
		}
	}
	if len(data.SensitiveData) > 0 {
		sensitive := make([]string, 0, len(data.SensitiveData))
		for _, s := range data.SensitiveData {
			sensitive = append(sensitive, s.String())
		}
		wire.SensitiveData = &sensitive
	}
	if data.Governance != nil {
		wire.Governance = &dataGovernance{
			Custodians: governancePartiesToWire(data.Governance.Custodians),
			Stewards:   governancePartiesToWire(data.Governance.Stewards),
			Owners:     governancePartiesToWire(data.Governance.Owners),
		}
	}
	return &wire
}

func componentDataToModel(data *componentData) *model.ComponentData {
	if data == nil {
		return nil
	}
	out := model.ComponentData{
		BomRef:         optString(data.BomRef),
		DataType:       model.ComponentDataType(data.Type),
		Name:           optNormalized(data.Name),
		Classification: optNormalized(data.Classification),
		Description:    optNormalized(data.Description),
	}
	if data.Contents != nil {
		out.Contents = &model.DataContents{
			Attachment: attachedTextToModel(data.Contents.Attachment),
			URL:        optUri(data.Contents.URL),
			Properties: propertiesToModel(data.Contents.Properties),
		}
	}
	if data.SensitiveData != nil {
		for _, s := range *data.SensitiveData {
			out.SensitiveData = append(out.SensitiveData, model.NormalizedStringUnchecked(s))
		}
	}
	if data.Governance != nil {
		out.Governance = &model.DataGovernance{
			Custodians: governancePartiesToModel(data.Governance.Custodians),
			Stewards:   governancePartiesToModel(data.Governance.Stewards),
			Owners:     governancePartiesToModel(data.Governance.Owners),
		}
	}
	return &out
}
