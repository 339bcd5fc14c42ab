package v14

import (
	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/xmlio"
)

type vulnerabilitySource struct {
	Name string `json:"name,omitempty" xml:"name,omitempty"`
	URL  string `json:"url,omitempty" xml:"url,omitempty"`
}

func vulnerabilitySourceToWire(s *model.VulnerabilitySource) *vulnerabilitySource {
	if s == nil {
		return nil
	}
	return &vulnerabilitySource{
		Name: normalizedValue(s.Name),
		URL:  uriValue(s.URL),
	}
}

func vulnerabilitySourceToModel(s *vulnerabilitySource) *model.VulnerabilitySource {
	if s == nil {
		return nil
	}
	return &model.VulnerabilitySource{
		Name: optNormalized(s.Name),
		URL:  optUri(s.URL),
	}
}

type vulnerabilityReference struct {
	ID     string               `json:"id" xml:"id"`
	Source *vulnerabilitySource `json:"source,omitempty" xml:"source,omitempty"`
}

type vulnerabilityRating struct {
	Source        *vulnerabilitySource `json:"source,omitempty" xml:"source,omitempty"`
	Score         *float64             `json:"score,omitempty" xml:"score,omitempty"`
	Severity      string               `json:"severity,omitempty" xml:"severity,omitempty"`
	Method        string               `json:"method,omitempty" xml:"method,omitempty"`
	Vector        string               `json:"vector,omitempty" xml:"vector,omitempty"`
	Justification string               `json:"justification,omitempty" xml:"justification,omitempty"`
}

type advisory struct {
	Title string `json:"title,omitempty" xml:"title,omitempty"`
	URL   string `json:"url" xml:"url"`
}

type vulnerabilityCredits struct {
	Organizations *[]organizationalEntity  `json:"organizations,omitempty" xml:"organizations>organization,omitempty"`
	Individuals   *[]organizationalContact `json:"individuals,omitempty" xml:"individuals>individual,omitempty"`
}

type vulnerabilityAnalysis struct {
	State         string    `json:"state,omitempty" xml:"state,omitempty"`
	Justification string    `json:"justification,omitempty" xml:"justification,omitempty"`
	Responses     *[]string `json:"response,omitempty" xml:"responses>response,omitempty"`
	Detail        string    `json:"detail,omitempty" xml:"detail,omitempty"`
}

type affectedVersion struct {
	Version string `json:"version,omitempty" xml:"version,omitempty"`
	Range   string `json:"range,omitempty" xml:"range,omitempty"`
	Status  string `json:"status,omitempty" xml:"status,omitempty"`
}

type vulnerabilityTarget struct {
	Ref      string             `json:"ref" xml:"ref"`
	Versions *[]affectedVersion `json:"versions,omitempty" xml:"versions>version,omitempty"`
}

func (t vulnerabilityTarget) check() error {
	if t.Ref == "" {
		return &xmlio.RequiredDataMissingError{RequiredField: "ref", Element: "target"}
	}
	return nil
}

type vulnerability struct {
	BomRef         string                    `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	ID             string                    `json:"id,omitempty" xml:"id,omitempty"`
	Source         *vulnerabilitySource      `json:"source,omitempty" xml:"source,omitempty"`
	References     *[]vulnerabilityReference `json:"references,omitempty" xml:"references>reference,omitempty"`
	Ratings        *[]vulnerabilityRating    `json:"ratings,omitempty" xml:"ratings>rating,omitempty"`
	CWEs           *[]int                    `json:"cwes,omitempty" xml:"cwes>cwe,omitempty"`
	Description    string                    `json:"description,omitempty" xml:"description,omitempty"`
	Detail         string                    `json:"detail,omitempty" xml:"detail,omitempty"`
	Recommendation string                    `json:"recommendation,omitempty" xml:"recommendation,omitempty"`
	Advisories     *[]advisory               `json:"advisories,omitempty" xml:"advisories>advisory,omitempty"`
	Created        string                    `json:"created,omitempty" xml:"created,omitempty"`
	Published      string                    `json:"published,omitempty" xml:"published,omitempty"`
	Updated        string                    `json:"updated,omitempty" xml:"updated,omitempty"`
	Credits        *vulnerabilityCredits     `json:"credits,omitempty" xml:"credits,omitempty"`
	Tools          *[]tool                   `json:"tools,omitempty" xml:"tools>tool,omitempty"`
	Analysis       *vulnerabilityAnalysis    `json:"analysis,omitempty" xml:"analysis,omitempty"`
	Affects        *[]vulnerabilityTarget    `json:"affects,omitempty" xml:"affects>target,omitempty"`
	Properties     *[]property               `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func (v vulnerability) check() error {
	if v.Affects != nil {
		for _, target := range *v.Affects {
			if err := target.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func vulnerabilityToWire(v model.Vulnerability) vulnerability {
	wire := vulnerability{
		BomRef:         stringValue(v.BomRef),
		ID:             normalizedValue(v.ID),
		Source:         vulnerabilitySourceToWire(v.Source),
		Description:    normalizedValue(v.Description),
		Detail:         normalizedValue(v.Detail),
		Recommendation: normalizedValue(v.Recommendation),
		Created:        dateTimeValue(v.Created),
		Published:      dateTimeValue(v.Published),
		Updated:        dateTimeValue(v.Updated),
		Tools:          toolsToWire(v.Tools),
		Properties:     propertiesToWire(v.Properties),
	}
	if len(v.References) > 0 {
		refs := make([]vulnerabilityReference, 0, len(v.References))
		for _, ref := range v.References {
			refs = append(refs, vulnerabilityReference{
				ID:     ref.ID.String(),
				Source: vulnerabilitySourceToWire(ref.Source),
			})
		}
		wire.References = &refs
	}
	if len(v.Ratings) > 0 {
		ratings := make([]vulnerabilityRating, 0, len(v.Ratings))
		for _, rating := range v.Ratings {
			entry := vulnerabilityRating{
				Source:        vulnerabilitySourceToWire(rating.Source),
				Score:         rating.Score,
				Vector:        normalizedValue(rating.Vector),
				Justification: normalizedValue(rating.Justification),
			}
			if rating.Severity != nil {
				entry.Severity = rating.Severity.String()
			}
			if rating.Method != nil {
				entry.Method = rating.Method.String()
			}
			ratings = append(ratings, entry)
		}
		wire.Ratings = &ratings
	}
	if len(v.CWEs) > 0 {
		cwes := append([]int(nil), v.CWEs...)
		wire.CWEs = &cwes
	}
	if len(v.Advisories) > 0 {
		advisories := make([]advisory, 0, len(v.Advisories))
		for _, a := range v.Advisories {
			advisories = append(advisories, advisory{
				Title: normalizedValue(a.Title),
				URL:   a.URL.String(),
			})
		}
		wire.Advisories = &advisories
	}
	if v.Credits != nil {
		credits := vulnerabilityCredits{
			Individuals: contactsToWire(v.Credits.Individuals),
		}
		if len(v.Credits.Organizations) > 0 {
			organizations := make([]organizationalEntity, 0, len(v.Credits.Organizations))
			for i := range v.Credits.Organizations {
				organizations = append(organizations, *entityToWire(&v.Credits.Organizations[i]))
			}
			credits.Organizations = &organizations
		}
		wire.Credits = &credits
	}
	if v.Analysis != nil {
		analysis := vulnerabilityAnalysis{
			Detail: normalizedValue(v.Analysis.Detail),
		}
		if v.Analysis.State != nil {
			analysis.State = v.Analysis.State.String()
		}
		if v.Analysis.Justification != nil {
			analysis.Justification = v.Analysis.Justification.String()
		}
		if len(v.Analysis.Responses) > 0 {
			responses := make([]string, 0, len(v.Analysis.Responses))
			for _, r := range v.Analysis.Responses {
				responses = append(responses, r.String())
			}
			analysis.Responses = &responses
		}
		wire.Analysis = &analysis
	}
	if len(v.Affects) > 0 {
		affects := make([]vulnerabilityTarget, 0, len(v.Affects))
		for _, target := range v.Affects {
			entry := vulnerabilityTarget{Ref: target.Ref}
			if len(target.Versions) > 0 {
				versions := make([]affectedVersion, 0, len(target.Versions))
				for _, av := range target.Versions {
					version := affectedVersion{
						Version: normalizedValue(av.Version),
						Range:   normalizedValue(av.Range),
					}
					if av.Status != nil {
						version.Status = av.Status.String()
					}
					versions = append(versions, version)
				}
				entry.Versions = &versions
			}
			affects = append(affects, entry)
		}
		wire.Affects = &affects
	}
	return wire
}

func vulnerabilityToModel(v vulnerability) model.Vulnerability {
	out := model.Vulnerability{
		BomRef:         optString(v.BomRef),
		ID:             optNormalized(v.ID),
		Source:         vulnerabilitySourceToModel(v.Source),
		Description:    optNormalized(v.Description),
		Detail:         optNormalized(v.Detail),
		Recommendation: optNormalized(v.Recommendation),
		Created:        optDateTime(v.Created),
		Published:      optDateTime(v.Published),
		Updated:        optDateTime(v.Updated),
		Tools:          toolsToModel(v.Tools),
		Properties:     propertiesToModel(v.Properties),
	}
	if v.References != nil {
		for _, ref := range *v.References {
			out.References = append(out.References, model.VulnerabilityReference{
				ID:     model.NormalizedStringUnchecked(ref.ID),
				Source: vulnerabilitySourceToModel(ref.Source),
			})
		}
	}
	if v.Ratings != nil {
		for _, rating := range *v.Ratings {
			entry := model.VulnerabilityRating{
				Source:        vulnerabilitySourceToModel(rating.Source),
				Score:         rating.Score,
				Vector:        optNormalized(rating.Vector),
				Justification: optNormalized(rating.Justification),
			}
			if rating.Severity != "" {
				severity := model.Severity(rating.Severity)
				entry.Severity = &severity
			}
			if rating.Method != "" {
				method := model.ScoreMethod(rating.Method)
				entry.Method = &method
			}
			out.Ratings = append(out.Ratings, entry)
		}
	}
	if v.CWEs != nil {
		out.CWEs = append([]int(nil), *v.CWEs...)
	}
	if v.Advisories != nil {
		for _, a := range *v.Advisories {
			out.Advisories = append(out.Advisories, model.Advisory{
				Title: optNormalized(a.Title),
				URL:   model.UriUnchecked(a.URL),
			})
		}
	}
	if v.Credits != nil {
		credits := model.VulnerabilityCredits{
			Individuals: contactsToModel(v.Credits.Individuals),
		}
		if v.Credits.Organizations != nil {
			for i := range *v.Credits.Organizations {
				credits.Organizations = append(credits.Organizations, *entityToModel(&(*v.Credits.Organizations)[i]))
			}
		}
		out.Credits = &credits
	}
	if v.Analysis != nil {
		analysis := model.VulnerabilityAnalysis{
			Detail: optNormalized(v.Analysis.Detail),
		}
		if v.Analysis.State != "" {
			state := model.ImpactAnalysisState(v.Analysis.State)
			analysis.State = &state
		}
		if v.Analysis.Justification != "" {
			justification := model.ImpactAnalysisJustification(v.Analysis.Justification)
			analysis.Justification = &justification
		}
		if v.Analysis.Responses != nil {
			for _, r := range *v.Analysis.Responses {
				analysis.Responses = append(analysis.Responses, model.AnalysisResponse(r))
			}
		}
		out.Analysis = &analysis
	}
	if v.Affects != nil {
		for _, target := range *v.Affects {
			entry := model.VulnerabilityTarget{Ref: target.Ref}
			if target.Versions != nil {
				for _, av := range *target.Versions {
					version := model.AffectedVersion{
						Version: optNormalized(av.Version),
						Range:   optNormalized(av.Range),
					}
					if av.Status != "" {
						status := model.AffectedStatus(av.Status)
						version.Status = &status
					}
					entry.Versions = append(entry.Versions, version)
				}
			}
			out.Affects = append(out.Affects, entry)
		}
	}
	return out
}

func vulnerabilitiesToWire(vulnerabilities model.Vulnerabilities) *[]vulnerability {
	if len(vulnerabilities) == 0 {
		return nil
	}
	wire := make([]vulnerability, 0, len(vulnerabilities))
	for _, v := range vulnerabilities {
		wire = append(wire, vulnerabilityToWire(v))
	}
	return &wire
}

func vulnerabilitiesToModel(vulnerabilities *[]vulnerability) model.Vulnerabilities {
	if vulnerabilities == nil {
		return nil
	}
	out := make(model.Vulnerabilities, 0, len(*vulnerabilities))
	for _, v := range *vulnerabilities {
		out = append(out, vulnerabilityToModel(v))
	}
	return out
}
