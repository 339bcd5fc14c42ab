package v14

import (
	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

type swid struct {
	TagID      string        `json:"tagId" xml:"tagId,attr"`
	Name       string        `json:"name" xml:"name,attr"`
	Version    string        `json:"version,omitempty" xml:"version,attr,omitempty"`
	TagVersion *int          `json:"tagVersion,omitempty" xml:"tagVersion,attr,omitempty"`
	Patch      *bool         `json:"patch,omitempty" xml:"patch,attr,omitempty"`
	Text       *attachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL        string        `json:"url,omitempty" xml:"url,attr,omitempty"`
}

func swidToWire(s *model.Swid) *swid {
	if s == nil {
		return nil
	}
	return &swid{
		TagID:      s.TagID,
		Name:       s.Name,
		Version:    stringValue(s.Version),
		TagVersion: s.TagVersion,
		Patch:      s.Patch,
		Text:       attachedTextToWire(s.Text),
		URL:        uriValue(s.URL),
	}
}

func swidToModel(s *swid) *model.Swid {
	if s == nil {
		return nil
	}
	return &model.Swid{
		TagID:      s.TagID,
		Name:       s.Name,
		Version:    optString(s.Version),
		TagVersion: s.TagVersion,
		Patch:      s.Patch,
		Text:       attachedTextToModel(s.Text),
		URL:        optUri(s.URL),
	}
}

type identifiableAction struct {
	Timestamp string `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Name      string `json:"name,omitempty" xml:"name,omitempty"`
	Email     string `json:"email,omitempty" xml:"email,omitempty"`
}

func actionToWire(action *model.IdentifiableAction) *identifiableAction {
	if action == nil {
		return nil
	}
	return &identifiableAction{
		Timestamp: dateTimeValue(action.Timestamp),
		Name:      normalizedValue(action.Name),
		Email:     normalizedValue(action.Email),
	}
}

func actionToModel(action *identifiableAction) *model.IdentifiableAction {
	if action == nil {
		return nil
	}
	return &model.IdentifiableAction{
		Timestamp: optDateTime(action.Timestamp),
		Name:      optNormalized(action.Name),
		Email:     optNormalized(action.Email),
	}
}

type commit struct {
	UID       string              `json:"uid,omitempty" xml:"uid,omitempty"`
	URL       string              `json:"url,omitempty" xml:"url,omitempty"`
	Author    *identifiableAction `json:"author,omitempty" xml:"author,omitempty"`
	Committer *identifiableAction `json:"committer,omitempty" xml:"committer,omitempty"`
	Message   string              `json:"message,omitempty" xml:"message,omitempty"`
}

func commitsToWire(commits model.Commits) *[]commit {
	if len(commits) == 0 {
		return nil
	}
	wire := make([]commit, 0, len(commits))
	for _, c := range commits {
		wire = append(wire, commit{
			UID:       normalizedValue(c.UID),
			URL:       uriValue(c.URL),
			Author:    actionToWire(c.Author),
			Committer: actionToWire(c.Committer),
			Message:   normalizedValue(c.Message),
		})
	}
	return &wire
}

func commitsToModel(commits *[]commit) model.Commits {
	if commits == nil {
		return nil
	}
	out := make(model.Commits, 0, len(*commits))
	for _, c := range *commits {
		out = append(out, model.Commit{
			UID:       optNormalized(c.UID),
			URL:       optUri(c.URL),
			Author:    actionToModel(c.Author),
			Committer: actionToModel(c.Committer),
			Message:   optNormalized(c.Message),
		})
	}
	return out
}

type issueSource struct {
	Name string `json:"name,omitempty" xml:"name,omitempty"`
	URL  string `json:"url,omitempty" xml:"url,omitempty"`
}

type issue struct {
	Type        string       `json:"type" xml:"type,attr"`
	ID          string       `json:"id,omitempty" xml:"id,omitempty"`
	Name        string       `json:"name,omitempty" xml:"name,omitempty"`
	Description string       `json:"description,omitempty" xml:"description,omitempty"`
	Source      *issueSource `json:"source,omitempty" xml:"source,omitempty"`
	References  *[]string    `json:"references,omitempty" xml:"references>url,omitempty"`
}

func (i issue) check() error {
	if i.Type == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "type", Element: "issue"}
	}
	return nil
}

func issueToWire(i model.Issue) issue {
	wire := issue{
		Type:        i.Type.String(),
		ID:          normalizedValue(i.ID),
		Name:        normalizedValue(i.Name),
		Description: normalizedValue(i.Description),
	}
	if i.Source != nil {
		wire.Source = &issueSource{
			Name: normalizedValue(i.Source.Name),
			URL:  uriValue(i.Source.URL),
		}
	}
	if len(i.References) > 0 {
		refs := make([]string, 0, len(i.References))
		for _, ref := range i.References {
			refs = append(refs, ref.String())
		}
		wire.References = &refs
	}
	return wire
}

func issueToModel(i issue) model.Issue {
	out := model.Issue{
		Type:        model.IssueClassification(i.Type),
		ID:          optNormalized(i.ID),
		Name:        optNormalized(i.Name),
		Description: optNormalized(i.Description),
	}
	if i.Source != nil {
		out.Source = &model.Source{
			Name: optNormalized(i.Source.Name),
			URL:  optUri(i.Source.URL),
		}
	}
	if i.References != nil {
		for _, ref := range *i.References {
			out.References = append(out.References, model.UriUnchecked(ref))
		}
	}
	return out
}

type diff struct {
	Text *attachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL  string        `json:"url,omitempty" xml:"url,omitempty"`
}

type patch struct {
	Type     string   `json:"type" xml:"type,attr"`
	Diff     *diff    `json:"diff,omitempty" xml:"diff,omitempty"`
	Resolves *[]issue `json:"resolves,omitempty" xml:"resolves>issue,omitempty"`
}

func (p patch) check() error {
	if p.Type == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "type", Element: "patch"}
	}
	if p.Resolves != nil {
		for _, i := range *p.Resolves {
			if err := i.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func patchesToWire(patches model.Patches) *[]patch {
	if len(patches) == 0 {
		return nil
	}
	wire := make([]patch, 0, len(patches))
	for _, p := range patches {
		entry := patch{Type: p.Type.String()}
		if p.Diff != nil {
			entry.Diff = &diff{
				Text: attachedTextToWire(p.Diff.Text),
				URL:  uriValue(p.Diff.URL),
			}
		}
		if len(p.Resolves) > 0 {
			resolves := make([]issue, 0, len(p.Resolves))
			for _, i := range p.Resolves {
				resolves = append(resolves, issueToWire(i))
			}
			entry.Resolves = &resolves
		}
		wire = append(wire, entry)
	}
	return &wire
}

func patchesToModel(patches *[]patch) model.Patches {
	if patches == nil {
		return nil
	}
	out := make(model.Patches, 0, len(*patches))
	for _, p := range *patches {
		entry := model.Patch{Type: model.PatchClassification(p.Type)}
		if p.Diff != nil {
			entry.Diff = &model.Diff{
				Text: attachedTextToModel(p.Diff.Text),
				URL:  optUri(p.Diff.URL),
			}
		}
		if p.Resolves != nil {
			for _, i := range *p.Resolves {
				entry.Resolves = append(entry.Resolves, issueToModel(i))
			}
		}
		out = append(out, entry)
	}
	return out
}

type pedigree struct {
	Ancestors   *[]component `json:"ancestors,omitempty" xml:"ancestors>component,omitempty"`
	Descendants *[]component `json:"descendants,omitempty" xml:"descendants>component,omitempty"`
	Variants    *[]component `json:"variants,omitempty" xml:"variants>component,omitempty"`
	Commits     *[]commit    `json:"commits,omitempty" xml:"commits>commit,omitempty"`
	Patches     *[]patch     `json:"patches,omitempty" xml:"patches>patch,omitempty"`
	Notes       string       `json:"notes,omitempty" xml:"notes,omitempty"`
}

func pedigreeToWire(p *model.Pedigree) *pedigree {
	if p == nil {
		return nil
	}
	return &pedigree{
		Ancestors:   componentsToWire(p.Ancestors),
		Descendants: componentsToWire(p.Descendants),
		Variants:    componentsToWire(p.Variants),
		Commits:     commitsToWire(p.Commits),
		Patches:     patchesToWire(p.Patches),
		Notes:       normalizedValue(p.Notes),
	}
}

func pedigreeToModel(p *pedigree) *model.Pedigree {
	if p == nil {
		return nil
	}
	return &model.Pedigree{
		Ancestors:   componentsToModel(p.Ancestors),
		Descendants: componentsToModel(p.Descendants),
		Variants:    componentsToModel(p.Variants),
		Commits:     commitsToModel(p.Commits),
		Patches:     patchesToModel(p.Patches),
		Notes:       optNormalized(p.Notes),
	}
}

type evidenceCopyright struct {
	Text string `json:"text" xml:",chardata"`
}

type componentEvidence struct {
	Licenses  *licenses            `json:"licenses,omitempty" xml:"licenses,omitempty"`
	Copyright *[]evidenceCopyright `json:"copyright,omitempty" xml:"copyright>text,omitempty"`
}

func evidenceToWire(e *model.ComponentEvidence) *componentEvidence {
	if e == nil {
		return nil
	}
	wire := componentEvidence{Licenses: licensesToWire(e.Licenses)}
	if len(e.Copyright) > 0 {
		statements := make([]evidenceCopyright, 0, len(e.Copyright))
		for _, c := range e.Copyright {
			statements = append(statements, evidenceCopyright{Text: c.Text})
		}
		wire.Copyright = &statements
	}
	return &wire
}

func evidenceToModel(e *componentEvidence) *model.ComponentEvidence {
	if e == nil {
		return nil
	}
	out := model.ComponentEvidence{Licenses: licensesToModel(e.Licenses)}
	if e.Copyright != nil {
		for _, c := range *e.Copyright {
			out.Copyright = append(out.Copyright, model.Copyright{Text: c.Text})
		}
	}
	return &out
}

type component struct {
	Type               string                `json:"type" xml:"type,attr"`
	MimeType           string                `json:"mime-type,omitempty" xml:"mime-type,attr,omitempty"`
	BomRef             string                `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Supplier           *organizationalEntity `json:"supplier,omitempty" xml:"supplier,omitempty"`
	Author             string                `json:"author,omitempty" xml:"author,omitempty"`
	Publisher          string                `json:"publisher,omitempty" xml:"publisher,omitempty"`
	Group              string                `json:"group,omitempty" xml:"group,omitempty"`
	Name               string                `json:"name" xml:"name"`
	Version            string                `json:"version" xml:"version"`
	Description        string                `json:"description,omitempty" xml:"description,omitempty"`
	Scope              string                `json:"scope,omitempty" xml:"scope,omitempty"`
	Hashes             *[]hash               `json:"hashes,omitempty" xml:"hashes>hash,omitempty"`
	Licenses           *licenses             `json:"licenses,omitempty" xml:"licenses,omitempty"`
	Copyright          string                `json:"copyright,omitempty" xml:"copyright,omitempty"`
	Cpe                string                `json:"cpe,omitempty" xml:"cpe,omitempty"`
	Purl               string                `json:"purl,omitempty" xml:"purl,omitempty"`
	Swid               *swid                 `json:"swid,omitempty" xml:"swid,omitempty"`
	Modified           *bool                 `json:"modified,omitempty" xml:"modified,omitempty"`
	Pedigree           *pedigree             `json:"pedigree,omitempty" xml:"pedigree,omitempty"`
	ExternalReferences *[]externalReference  `json:"externalReferences,omitempty" xml:"externalReferences>reference,omitempty"`
	Properties         *[]property           `json:"properties,omitempty" xml:"properties>property,omitempty"`
	Components         *[]component          `json:"components,omitempty" xml:"components>component,omitempty"`
	Evidence           *componentEvidence    `json:"evidence,omitempty" xml:"evidence,omitempty"`
	Signature          *signature            `json:"signature,omitempty" xml:"-"`
}

func (c component) check() error {
	if c.Type == "" {
		return &xmlio.RequiredAttributeMissingError{Attribute: "type", Element: "component"}
	}
	if c.Name == "" {
		return &xmlio.RequiredDataMissingError{RequiredField: "name", Element: "component"}
	}
	if c.Hashes != nil {
		for _, h := range *c.Hashes {
			if err := h.check(); err != nil {
				return err
			}
		}
	}
	if c.ExternalReferences != nil {
		for _, ref := range *c.ExternalReferences {
			if err := ref.check(); err != nil {
				return err
			}
		}
	}
	if c.Pedigree != nil && c.Pedigree.Patches != nil {
		for _, p := range *c.Pedigree.Patches {
			if err := p.check(); err != nil {
				return err
			}
		}
	}
	if c.Components != nil {
		for _, nested := range *c.Components {
			if err := nested.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func componentToWire(c model.Component) component {
	wire := component{
		Type:               c.ComponentType.String(),
		BomRef:             stringValue(c.BomRef),
		Supplier:           entityToWire(c.Supplier),
		Author:             normalizedValue(c.Author),
		Publisher:          normalizedValue(c.Publisher),
		Group:              normalizedValue(c.Group),
		Name:               c.Name.String(),
		Version:            c.Version.String(),
		Description:        normalizedValue(c.Description),
		Hashes:             hashesToWire(c.Hashes),
		Licenses:           licensesToWire(c.Licenses),
		Copyright:          normalizedValue(c.Copyright),
		Swid:               swidToWire(c.Swid),
		Modified:           c.Modified,
		Pedigree:           pedigreeToWire(c.Pedigree),
		ExternalReferences: externalReferencesToWire(c.ExternalReferences),
		Properties:         propertiesToWire(c.Properties),
		Components:         componentsToWire(c.Components),
		Evidence:           evidenceToWire(c.Evidence),
		Signature:          signatureToWire(c.Signature),
	}
	if c.MimeType != nil {
		wire.MimeType = c.MimeType.String()
	}
	if c.Scope != nil {
		wire.Scope = c.Scope.String()
	}
	if c.Cpe != nil {
		wire.Cpe = c.Cpe.String()
	}
	if c.Purl != nil {
		wire.Purl = c.Purl.String()
	}
	return wire
}

func componentToModel(c component) model.Component {
	out := model.Component{
		ComponentType:      model.Classification(c.Type),
		BomRef:             optString(c.BomRef),
		Supplier:           entityToModel(c.Supplier),
		Author:             optNormalized(c.Author),
		Publisher:          optNormalized(c.Publisher),
		Group:              optNormalized(c.Group),
		Name:               model.NormalizedStringUnchecked(c.Name),
		Version:            model.NormalizedStringUnchecked(c.Version),
		Description:        optNormalized(c.Description),
		Hashes:             hashesToModel(c.Hashes),
		Licenses:           licensesToModel(c.Licenses),
		Copyright:          optNormalized(c.Copyright),
		Swid:               swidToModel(c.Swid),
		Modified:           c.Modified,
		Pedigree:           pedigreeToModel(c.Pedigree),
		ExternalReferences: externalReferencesToModel(c.ExternalReferences),
		Properties:         propertiesToModel(c.Properties),
		Components:         componentsToModel(c.Components),
		Evidence:           evidenceToModel(c.Evidence),
		Signature:          signatureToModel(c.Signature),
	}
	if c.MimeType != "" {
		mimeType := model.MimeType(c.MimeType)
		out.MimeType = &mimeType
	}
	if c.Scope != "" {
		scope := model.Scope(c.Scope)
		out.Scope = &scope
	}
	if c.Cpe != "" {
		cpe := model.Cpe(c.Cpe)
		out.Cpe = &cpe
	}
	if c.Purl != "" {
		purl := model.PurlUnchecked(c.Purl)
		out.Purl = &purl
	}
	return out
}

func componentsToWire(components *model.Components) *[]component {
	if components == nil || len(*components) == 0 {
		return nil
	}
	wire := make([]component, 0, len(*components))
	for _, c := range *components {
		wire = append(wire, componentToWire(c))
	}
	return &wire
}

func componentsToModel(components *[]component) *model.Components {
	if components == nil {
		return nil
	}
	out := make(model.Components, 0, len(*components))
	for _, c := range *components {
		out = append(out, componentToModel(c))
	}
	return &out
}
