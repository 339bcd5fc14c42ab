package v14

import (
	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

func optString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optNormalized(value string) *model.NormalizedString {
	if value == "" {
		return nil
	}
	n := model.NormalizedStringUnchecked(value)
	return &n
}

func normalizedValue(p *model.NormalizedString) string {
	if p == nil {
		return ""
	}
	return p.String()
}

func optUri(value string) *model.Uri {
	if value == "" {
		return nil
	}
	u := model.UriUnchecked(value)
	return &u
}

func uriValue(p *model.Uri) string {
	if p == nil {
		return ""
	}
	return p.String()
}

func optDateTime(value string) *model.DateTime {
	if value == "" {
		return nil
	}
	d := model.DateTimeUnchecked(value)
	return &d
}

func dateTimeValue(p *model.DateTime) string {
	if p == nil {
		return ""
	}
	return p.String()
}

type hash struct {
	Alg     string `json:"alg" xml:"alg,attr"`
	Content string `json:"content" xml:",chardata"`
}

func (h hash) check() error {
	if h.Alg == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "alg", Element: "hash"}
	}
	if h.Content == "" {
		return &xmlio.RequiredDataMissingError{RequiredField: "content", Element: "hash"}
	}
	return nil
}

func hashesToWire(hashes model.Hashes) *[]hash {
	if len(hashes) == 0 {
		return nil
	}
	wire := make([]hash, 0, len(hashes))
	for _, h := range hashes {
		wire = append(wire, hash{Alg: h.Alg.String(), Content: h.Content.String()})
	}
	return &wire
}

func hashesToModel(hashes *[]hash) model.Hashes {
	if hashes == nil {
		return nil
	}
	out := make(model.Hashes, 0, len(*hashes))
	for _, h := range *hashes {
		out = append(out, model.Hash{Alg: model.HashAlgorithm(h.Alg), Content: model.HashValue(h.Content)})
	}
	return out
}

type attachedText struct {
	ContentType string `json:"contentType,omitempty" xml:"content-type,attr,omitempty"`
	Encoding    string `json:"encoding,omitempty" xml:"encoding,attr,omitempty"`
	Content     string `json:"content" xml:",chardata"`
}

func attachedTextToWire(text *model.AttachedText) *attachedText {
	if text == nil {
		return nil
	}
	wire := attachedText{
		ContentType: normalizedValue(text.ContentType),
		Content:     text.Content,
	}
	if text.Encoding != nil {
		wire.Encoding = text.Encoding.String()
	}
	return &wire
}

func attachedTextToModel(text *attachedText) *model.AttachedText {
	if text == nil {
		return nil
	}
	out := model.AttachedText{
		ContentType: optNormalized(text.ContentType),
		Content:     text.Content,
	}
	if text.Encoding != "" {
		encoding := model.Encoding(text.Encoding)
		out.Encoding = &encoding
	}
	return &out
}

type property struct {
	Name  string `json:"name" xml:"name,attr"`
	Value string `json:"value" xml:",chardata"`
}

func (p property) check() error {
	if p.Name == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "name", Element: "property"}
	}
	return nil
}

func propertiesToWire(properties model.Properties) *[]property {
	if len(properties) == 0 {
		return nil
	}
	wire := make([]property, 0, len(properties))
	for _, p := range properties {
		wire = append(wire, property{Name: p.Name, Value: p.Value.String()})
	}
	return &wire
}

func propertiesToModel(properties *[]property) model.Properties {
	if properties == nil {
		return nil
	}
	out := make(model.Properties, 0, len(*properties))
	for _, p := range *properties {
		out = append(out, model.Property{Name: p.Name, Value: model.NormalizedStringUnchecked(p.Value)})
	}
	return out
}

type organizationalContact struct {
	Name  string `json:"name,omitempty" xml:"name,omitempty"`
	Email string `json:"email,omitempty" xml:"email,omitempty"`
	Phone string `json:"phone,omitempty" xml:"phone,omitempty"`
}

func contactToWire(contact model.OrganizationalContact) organizationalContact {
	return organizationalContact{
		Name:  normalizedValue(contact.Name),
		Email: normalizedValue(contact.Email),
		Phone: normalizedValue(contact.Phone),
	}
}

func contactToModel(contact organizationalContact) model.OrganizationalContact {
	return model.OrganizationalContact{
		Name:  optNormalized(contact.Name),
		Email: optNormalized(contact.Email),
		Phone: optNormalized(contact.Phone),
	}
}

func contactsToWire(contacts []model.OrganizationalContact) *[]organizationalContact {
	if len(contacts) == 0 {
		return nil
	}
	wire := make([]organizationalContact, 0, len(contacts))
	for _, c := range contacts {
		wire = append(wire, contactToWire(c))
	}
	return &wire
}

func contactsToModel(contacts *[]organizationalContact) []model.OrganizationalContact {
	if contacts == nil {
		return nil
	}
	out := make([]model.OrganizationalContact, 0, len(*contacts))
	for _, c := range *contacts {
		out = append(out, contactToModel(c))
	}
	return out
}

type organizationalEntity struct {
	Name    string                   `json:"name,omitempty" xml:"name,omitempty"`
	URL     *[]string                `json:"url,omitempty" xml:"url,omitempty"`
	Contact *[]organizationalContact `json:"contact,omitempty" xml:"contact,omitempty"`
}

func entityToWire(entity *model.OrganizationalEntity) *organizationalEntity {
	if entity == nil {
		return nil
	}
	wire := organizationalEntity{
		Name:    normalizedValue(entity.Name),
		Contact: contactsToWire(entity.Contact),
	}
	if len(entity.URLs) > 0 {
		urls := make([]string, 0, len(entity.URLs))
		for _, u := range entity.URLs {
			urls = append(urls, u.String())
		}
		wire.URL = &urls
	}
	return &wire
}

func entityToModel(entity *organizationalEntity) *model.OrganizationalEntity {
	if entity == nil {
		return nil
	}
	out := model.OrganizationalEntity{
		Name:    optNormalized(entity.Name),
		Contact: contactsToModel(entity.Contact),
	}
	if entity.URL != nil {
		for _, u := range *entity.URL {
			out.URLs = append(out.URLs, model.UriUnchecked(u))
		}
	}
	return &out
}

type externalReference struct {
	URL     string  `json:"url" xml:"url"`
	Type    string  `json:"type" xml:"type,attr"`
	Comment string  `json:"comment,omitempty" xml:"comment,omitempty"`
	Hashes  *[]hash `json:"hashes,omitempty" xml:"hashes>hash,omitempty"`
}

func (e externalReference) check() error {
	if e.Type == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "type", Element: "reference"}
	}
	if e.URL == "" {
		return &xmlio.RequiredDataMissingError{RequiredField: "url", Element: "reference"}
	}
	if e.Hashes != nil {
		for _, h := range *e.Hashes {
			if err := h.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func externalReferencesToWire(refs model.ExternalReferences) *[]externalReference {
	if len(refs) == 0 {
		return nil
	}
	wire := make([]externalReference, 0, len(refs))
	for _, ref := range refs {
		wire = append(wire, externalReference{
			URL:     ref.URL.String(),
			Type:    ref.Type.String(),
			Comment: normalizedValue(ref.Comment),
			Hashes:  hashesToWire(ref.Hashes),
		})
	}
	return &wire
}

func externalReferencesToModel(refs *[]externalReference) model.ExternalReferences {
	if refs == nil {
		return nil
	}
	out := make(model.ExternalReferences, 0, len(*refs))
	for _, ref := range *refs {
		out = append(out, model.ExternalReference{
			URL:     model.UriUnchecked(ref.URL),
			Type:    model.ExternalReferenceType(ref.Type),
			Comment: optNormalized(ref.Comment),
			Hashes:  hashesToModel(ref.Hashes),
		})
	}
	return out
}

type tool struct {
	Vendor             string               `json:"vendor,omitempty" xml:"vendor,omitempty"`
	Name               string               `json:"name,omitempty" xml:"name,omitempty"`
	Version            string               `json:"version,omitempty" xml:"version,omitempty"`
	Hashes             *[]hash              `json:"hashes,omitempty" xml:"hashes>hash,omitempty"`
	ExternalReferences *[]externalReference `json:"externalReferences,omitempty" xml:"externalReferences>reference,omitempty"`
}

func toolsToWire(tools model.Tools) *[]tool {
	if len(tools) == 0 {
		return nil
	}
	wire := make([]tool, 0, len(tools))
	for _, t := range tools {
		wire = append(wire, tool{
			Vendor:             normalizedValue(t.Vendor),
			Name:               normalizedValue(t.Name),
			Version:            normalizedValue(t.Version),
			Hashes:             hashesToWire(t.Hashes),
			ExternalReferences: externalReferencesToWire(t.ExternalReferences),
		})
	}
	return &wire
}

func toolsToModel(tools *[]tool) model.Tools {
	if tools == nil {
		return nil
	}
	out := make(model.Tools, 0, len(*tools))
	for _, t := range *tools {
		out = append(out, model.Tool{
			Vendor:             optNormalized(t.Vendor),
			Name:               optNormalized(t.Name),
			Version:            optNormalized(t.Version),
			Hashes:             hashesToModel(t.Hashes),
			ExternalReferences: externalReferencesToModel(t.ExternalReferences),
		})
	}
	return out
}
