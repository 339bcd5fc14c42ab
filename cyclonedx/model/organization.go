package model

import (
	"fmt"
	"regexp"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// OrganizationalContact is an individual with optional contact details.
type OrganizationalContact struct {
	Name  *NormalizedString
	Email *NormalizedString
	Phone *NormalizedString
}

// NewOrganizationalContact validates the email address at construction time.
func NewOrganizationalContact(name, email string) (OrganizationalContact, error) {
	if !emailPattern.MatchString(email) {
		return OrganizationalContact{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	n := NewNormalizedString(name)
	e := NewNormalizedString(email)
	return OrganizationalContact{Name: &n, Email: &e}, nil
}

func (o OrganizationalContact) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if o.Name != nil {
		result = result.Merge(o.Name.Validate(version, ctx.Extend(validate.Struct("OrganizationalContact", "name"))))
	}
	if o.Email != nil {
		result = result.Merge(o.Email.Validate(version, ctx.Extend(validate.Struct("OrganizationalContact", "email"))))
	}
	if o.Phone != nil {
		result = result.Merge(o.Phone.Validate(version, ctx.Extend(validate.Struct("OrganizationalContact", "phone"))))
	}
	return result
}

// OrganizationalEntity is an organization with optional URLs and contacts.
type OrganizationalEntity struct {
	Name    *NormalizedString
	URLs    []Uri
	Contact []OrganizationalContact
}

func (o OrganizationalEntity) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if o.Name != nil {
		result = result.Merge(o.Name.Validate(version, ctx.Extend(validate.Struct("OrganizationalEntity", "name"))))
	}
	for i, u := range o.URLs {
		result = result.Merge(u.Validate(version, ctx.Extend(validate.Struct("OrganizationalEntity", "url"), validate.Array(i))))
	}
	for i, c := range o.Contact {
		result = result.Merge(c.Validate(version, ctx.Extend(validate.Struct("OrganizationalEntity", "contact"), validate.Array(i))))
	}
	return result
}
