package v14

import "github.com/gobom/cyclonedx/cyclonedx/model"

type bomReference struct {
	Ref string `xml:"ref,attr"`
}

// composition carries its assembly and dependency refs twice: JSON wants a
// plain string array while XML wants ref-attribute elements. The conversion
// layer fills both on write and reads whichever side the decoder populated.
type composition struct {
	Aggregate       string          `json:"aggregate" xml:"aggregate"`
	Assemblies      *[]string       `json:"assemblies,omitempty" xml:"-"`
	AssembliesXML   *[]bomReference `json:"-" xml:"assemblies>assembly,omitempty"`
	Dependencies    *[]string       `json:"dependencies,omitempty" xml:"-"`
	DependenciesXML *[]bomReference `json:"-" xml:"dependencies>dependency,omitempty"`
	Signature       *signature      `json:"signature,omitempty" xml:"-"`
}

func refListToWire(refs []string) (*[]string, *[]bomReference) {
	if len(refs) == 0 {
		return nil, nil
	}
	plain := append([]string(nil), refs...)
	attrs := make([]bomReference, 0, len(refs))
	for _, ref := range refs {
		attrs = append(attrs, bomReference{Ref: ref})
	}
	return &plain, &attrs
}

func refListToModel(plain *[]string, attrs *[]bomReference) []string {
	if plain != nil {
		return append([]string(nil), *plain...)
	}
	if attrs != nil {
		out := make([]string, 0, len(*attrs))
		for _, ref := range *attrs {
			out = append(out, ref.Ref)
		}
		return out
	}
	return nil
}

func compositionsToWire(compositions model.Compositions) *[]composition {
	if len(compositions) == 0 {
		return nil
	}
	wire := make([]composition, 0, len(compositions))
	for _, c := range compositions {
		entry := composition{
			Aggregate: c.Aggregate.String(),
			Signature: signatureToWire(c.Signature),
		}
		entry.Assemblies, entry.AssembliesXML = refListToWire(c.Assemblies)
		entry.Dependencies, entry.DependenciesXML = refListToWire(c.Dependencies)
		wire = append(wire, entry)
	}
	return &wire
}

func compositionsToModel(compositions *[]composition) model.Compositions {
	if compositions == nil {
		return nil
	}
	out := make(model.Compositions, 0, len(*compositions))
	for _, c := range *compositions {
		out = append(out, model.Composition{
			Aggregate:    model.AggregateType(c.Aggregate),
			Assemblies:   refListToModel(c.Assemblies, c.AssembliesXML),
			Dependencies: refListToModel(c.Dependencies, c.DependenciesXML),
			Signature:    signatureToModel(c.Signature),
		})
	}
	return out
}
