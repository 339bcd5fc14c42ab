package model

import (
	"encoding/base64"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// AttachedText is inline content such as license text, optionally base64
// encoded.
type AttachedText struct {
	ContentType *NormalizedString
	Encoding    *Encoding
	Content     string
}

// NewAttachedText base64-encodes the given raw content.
func NewAttachedText(contentType *NormalizedString, raw []byte) AttachedText {
	encoding := EncodingBase64
	return AttachedText{
		ContentType: contentType,
		Encoding:    &encoding,
		Content:     base64.StdEncoding.EncodeToString(raw),
	}
}

func (a AttachedText) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if a.ContentType != nil {
		result = result.Merge(a.ContentType.Validate(version, ctx.Extend(validate.Struct("AttachedText", "content_type"))))
	}
	if a.Encoding != nil {
		result = result.Merge(a.Encoding.Validate(version, ctx.Extend(validate.Struct("AttachedText", "encoding"))))
	}
	return result
}

// Encoding is the closed vocabulary for attached text encodings.
type Encoding string

const EncodingBase64 Encoding = "base64"

func (e Encoding) WellKnown() bool {
	return e == EncodingBase64
}

func (e Encoding) String() string {
	return string(e)
}

func (e Encoding) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !e.WellKnown() {
		return validate.FailUnknown("Encoding", ctx)
	}
	return validate.Pass()
}
