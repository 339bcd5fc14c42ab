package v15

import "github.com/gobom/cyclonedx/cyclonedx/model"

type signer struct {
	Algorithm string `json:"algorithm,omitempty"`
	Value     string `json:"value,omitempty"`
}

// signature is the JSON Signature Format subset: an inline algorithm/value
// pair, a chain, or a list of independent signers. It never appears in XML
// documents.
type signature struct {
	Algorithm string    `json:"algorithm,omitempty"`
	Value     string    `json:"value,omitempty"`
	Chain     *[]signer `json:"chain,omitempty"`
	Signers   *[]signer `json:"signers,omitempty"`
}

func signersToWire(signers []model.Signer) *[]signer {
	if len(signers) == 0 {
		return nil
	}
	wire := make([]signer, 0, len(signers))
	for _, s := range signers {
		wire = append(wire, signer{Algorithm: s.Algorithm.String(), Value: s.Value})
	}
	return &wire
}

func signersToModel(signers *[]signer) []model.Signer {
	if signers == nil {
		return nil
	}
	out := make([]model.Signer, 0, len(*signers))
	for _, s := range *signers {
		out = append(out, model.Signer{Algorithm: model.SignatureAlgorithm(s.Algorithm), Value: s.Value})
	}
	return out
}

func signatureToWire(s *model.Signature) *signature {
	if s == nil {
		return nil
	}
	wire := signature{
		Chain:   signersToWire(s.Chain),
		Signers: signersToWire(s.Signers),
	}
	if s.Single != nil {
		wire.Algorithm = s.Single.Algorithm.String()
		wire.Value = s.Single.Value
	}
	return &wire
}

func signatureToModel(s *signature) *model.Signature {
	if s == nil {
		return nil
	}
	out := model.Signature{
		Chain:   signersToModel(s.Chain),
		Signers: signersToModel(s.Signers),
	}
	if out.Chain == nil && out.Signers == nil {
		out.Single = &model.Signer{Algorithm: model.SignatureAlgorithm(s.Algorithm), Value: s.Value}
	}
	return &out
}
