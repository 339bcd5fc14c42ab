package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// SignatureAlgorithm is the closed vocabulary of JSF signature algorithms.
type SignatureAlgorithm string

const (
	SignatureAlgorithmRS256   SignatureAlgorithm = "RS256"
	SignatureAlgorithmRS384   SignatureAlgorithm = "RS384"
	SignatureAlgorithmRS512   SignatureAlgorithm = "RS512"
	SignatureAlgorithmPS256   SignatureAlgorithm = "PS256"
	SignatureAlgorithmPS384   SignatureAlgorithm = "PS384"
	SignatureAlgorithmPS512   SignatureAlgorithm = "PS512"
	SignatureAlgorithmES256   SignatureAlgorithm = "ES256"
	SignatureAlgorithmES384   SignatureAlgorithm = "ES384"
	SignatureAlgorithmES512   SignatureAlgorithm = "ES512"
	SignatureAlgorithmEd25519 SignatureAlgorithm = "Ed25519"
	SignatureAlgorithmEd448   SignatureAlgorithm = "Ed448"
	SignatureAlgorithmHS256   SignatureAlgorithm = "HS256"
	SignatureAlgorithmHS384   SignatureAlgorithm = "HS384"
	SignatureAlgorithmHS512   SignatureAlgorithm = "HS512"
)

func (s SignatureAlgorithm) WellKnown() bool {
	switch s {
	case SignatureAlgorithmRS256, SignatureAlgorithmRS384, SignatureAlgorithmRS512,
		SignatureAlgorithmPS256, SignatureAlgorithmPS384, SignatureAlgorithmPS512,
		SignatureAlgorithmES256, SignatureAlgorithmES384, SignatureAlgorithmES512,
		SignatureAlgorithmEd25519, SignatureAlgorithmEd448,
		SignatureAlgorithmHS256, SignatureAlgorithmHS384, SignatureAlgorithmHS512:
		return true
	}
	return false
}

func (s SignatureAlgorithm) String() string {
	return string(s)
}

func (s SignatureAlgorithm) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !s.WellKnown() {
		return validate.FailUnknown("SignatureAlgorithm", ctx)
	}
	return validate.Pass()
}

// Signer is one algorithm/value pair inside a signature.
type Signer struct {
	Algorithm SignatureAlgorithm
	Value     string
}

func (s Signer) Validate(version spec.Version, ctx validate.Context) validate.Result {
	return s.Algorithm.Validate(version, ctx.Extend(validate.Struct("Signer", "algorithm")))
}

// Signature models the JSON Signature Format subset used by CycloneDX:
// either a single signer, a chain of signers, or a list of independent
// signers. Exactly one form is populated. Signature values are carried,
// never computed.
type Signature struct {
	Single  *Signer
	Chain   []Signer
	Signers []Signer
}

// SingleSignature returns a signature in the single-signer form.
func SingleSignature(algorithm SignatureAlgorithm, value string) *Signature {
	return &Signature{Single: &Signer{Algorithm: algorithm, Value: value}}
}

func (s Signature) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if s.Single != nil {
		result = result.Merge(s.Single.Validate(version, ctx.Extend(validate.Struct("Signature", "signer"))))
	}
	for i, signer := range s.Chain {
		result = result.Merge(signer.Validate(version, ctx.Extend(validate.Struct("Signature", "chain"), validate.Array(i))))
	}
	for i, signer := range s.Signers {
		result = result.Merge(signer.Validate(version, ctx.Extend(validate.Struct("Signature", "signers"), validate.Array(i))))
	}
	return result
}
