package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// IdentifiableAction records who did something and when.
type IdentifiableAction struct {
	Timestamp *DateTime
	Name      *NormalizedString
	Email     *NormalizedString
}

func (a IdentifiableAction) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if a.Timestamp != nil {
		result = result.Merge(a.Timestamp.Validate(version, ctx.Extend(validate.Struct("IdentifiableAction", "timestamp"))))
	}
	if a.Name != nil {
		result = result.Merge(a.Name.Validate(version, ctx.Extend(validate.Struct("IdentifiableAction", "name"))))
	}
	if a.Email != nil {
		result = result.Merge(a.Email.Validate(version, ctx.Extend(validate.Struct("IdentifiableAction", "email"))))
	}
	return result
}

// Commit is one entry in a component's pedigree commit history.
type Commit struct {
	UID       *NormalizedString
	URL       *Uri
	Author    *IdentifiableAction
	Committer *IdentifiableAction
	Message   *NormalizedString
}

func (c Commit) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if c.UID != nil {
		result = result.Merge(c.UID.Validate(version, ctx.Extend(validate.Struct("Commit", "uid"))))
	}
	if c.URL != nil {
		result = result.Merge(c.URL.Validate(version, ctx.Extend(validate.Struct("Commit", "url"))))
	}
	if c.Author != nil {
		result = result.Merge(c.Author.Validate(version, ctx.Extend(validate.Struct("Commit", "author"))))
	}
	if c.Committer != nil {
		result = result.Merge(c.Committer.Validate(version, ctx.Extend(validate.Struct("Commit", "committer"))))
	}
	if c.Message != nil {
		result = result.Merge(c.Message.Validate(version, ctx.Extend(validate.Struct("Commit", "message"))))
	}
	return result
}

// Commits is a list of commits.
type Commits []Commit

func (c Commits) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, commit := range c {
		result = result.Merge(commit.Validate(version, ctx.Extend(validate.Struct("Commits", "inner"), validate.Array(i))))
	}
	return result
}

// PatchClassification is the closed vocabulary of patch kinds.
type PatchClassification string

const (
	PatchBackport   PatchClassification = "backport"
	PatchCherryPick PatchClassification = "cherry-pick"
	PatchMonkey     PatchClassification = "monkey"
	PatchUnofficial PatchClassification = "unofficial"
)

func (p PatchClassification) WellKnown() bool {
	switch p {
	case PatchBackport, PatchCherryPick, PatchMonkey, PatchUnofficial:
		return true
	}
	return false
}

func (p PatchClassification) String() string {
	return string(p)
}

func (p PatchClassification) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !p.WellKnown() {
		return validate.FailUnknown("PatchClassification", ctx)
	}
	return validate.Pass()
}

// Diff carries patch content inline or by reference.
type Diff struct {
	Text *AttachedText
	URL  *Uri
}

func (d Diff) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if d.Text != nil {
		result = result.Merge(d.Text.Validate(version, ctx.Extend(validate.Struct("Diff", "text"))))
	}
	if d.URL != nil {
		result = result.Merge(d.URL.Validate(version, ctx.Extend(validate.Struct("Diff", "url"))))
	}
	return result
}

// IssueClassification is the closed vocabulary of issue kinds.
type IssueClassification string

const (
	IssueDefect      IssueClassification = "defect"
	IssueEnhancement IssueClassification = "enhancement"
	IssueSecurity    IssueClassification = "security"
)

func (i IssueClassification) WellKnown() bool {
	switch i {
	case IssueDefect, IssueEnhancement, IssueSecurity:
		return true
	}
	return false
}

func (i IssueClassification) String() string {
	return string(i)
}

func (i IssueClassification) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !i.WellKnown() {
		return validate.FailUnknown("IssueClassification", ctx)
	}
	return validate.Pass()
}

// Source names where an issue or vulnerability record came from.
type Source struct {
	Name *NormalizedString
	URL  *Uri
}

func (s Source) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if s.Name != nil {
		result = result.Merge(s.Name.Validate(version, ctx.Extend(validate.Struct("Source", "name"))))
	}
	if s.URL != nil {
		result = result.Merge(s.URL.Validate(version, ctx.Extend(validate.Struct("Source", "url"))))
	}
	return result
}

// Issue is a defect or enhancement a patch resolves.
type Issue struct {
	Type        IssueClassification
	ID          *NormalizedString
	Name        *NormalizedString
	Description *NormalizedString
	Source      *Source
	References  []Uri
}

func (i Issue) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := i.Type.Validate(version, ctx.Extend(validate.Struct("Issue", "issue_type")))
	if i.ID != nil {
		result = result.Merge(i.ID.Validate(version, ctx.Extend(validate.Struct("Issue", "id"))))
	}
	if i.Name != nil {
		result = result.Merge(i.Name.Validate(version, ctx.Extend(validate.Struct("Issue", "name"))))
	}
	if i.Description != nil {
		result = result.Merge(i.Description.Validate(version, ctx.Extend(validate.Struct("Issue", "description"))))
	}
	if i.Source != nil {
		result = result.Merge(i.Source.Validate(version, ctx.Extend(validate.Struct("Issue", "source"))))
	}
	for idx, ref := range i.References {
		result = result.Merge(ref.Validate(version, ctx.Extend(validate.Struct("Issue", "references"), validate.Array(idx))))
	}
	return result
}

// Patch is one entry in a component's pedigree patch history.
type Patch struct {
	Type     PatchClassification
	Diff     *Diff
	Resolves []Issue
}

func (p Patch) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := p.Type.Validate(version, ctx.Extend(validate.Struct("Patch", "patch_type")))
	if p.Diff != nil {
		result = result.Merge(p.Diff.Validate(version, ctx.Extend(validate.Struct("Patch", "diff"))))
	}
	for i, issue := range p.Resolves {
		result = result.Merge(issue.Validate(version, ctx.Extend(validate.Struct("Patch", "resolves"), validate.Array(i))))
	}
	return result
}

// Patches is a list of patches.
type Patches []Patch

func (p Patches) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, patch := range p {
		result = result.Merge(patch.Validate(version, ctx.Extend(validate.Struct("Patches", "inner"), validate.Array(i))))
	}
	return result
}
