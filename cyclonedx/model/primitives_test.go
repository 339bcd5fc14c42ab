package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

func TestNewUri(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "https://cyclonedx.org", wantErr: false},
		{value: "https://example.com/path?q=1", wantErr: false},
		{value: "not a uri", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			_, err := NewUri(test.value)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURI)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUriUncheckedIsFlaggedByValidate(t *testing.T) {
	uri := UriUnchecked("not a uri")
	result := uri.Validate(spec.V1_3, validate.NewContext())
	assert.False(t, result.Passed())
}

func TestNewPurl(t *testing.T) {
	purl, err := NewPurl("golang", "github.com/spf13/cobra", "v1.3.0")
	require.NoError(t, err)
	assert.True(t, purl.Validate(spec.V1_3, validate.NewContext()).Passed())

	malformed := PurlUnchecked("pkg:/missing-type")
	assert.False(t, malformed.Validate(spec.V1_3, validate.NewContext()).Passed())
}

func TestNewDateTime(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "2024-01-02T15:04:05Z", wantErr: false},
		{value: "2024-01-02T15:04:05+02:00", wantErr: false},
		{value: "2024-01-02", wantErr: true},
		{value: "yesterday", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			_, err := NewDateTime(test.value)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateTime)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewUrnUUID(t *testing.T) {
	_, err := NewUrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")
	assert.NoError(t, err)

	_, err = NewUrnUUID("3e671687-395b-41f5-a30f-a58921a69b79")
	assert.ErrorIs(t, err, ErrInvalidUrnUUID)

	generated := GenerateUrnUUID()
	assert.True(t, generated.Validate(spec.V1_3, validate.NewContext()).Passed())
}
