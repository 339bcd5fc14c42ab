package model

import (
	"regexp"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// HashAlgorithm is the closed vocabulary of hash algorithms. Values outside
// the vocabulary are preserved verbatim and flagged during validation.
type HashAlgorithm string

const (
	HashAlgorithmMD5        HashAlgorithm = "MD5"
	HashAlgorithmSHA1       HashAlgorithm = "SHA-1"
	HashAlgorithmSHA256     HashAlgorithm = "SHA-256"
	HashAlgorithmSHA384     HashAlgorithm = "SHA-384"
	HashAlgorithmSHA512     HashAlgorithm = "SHA-512"
	HashAlgorithmSHA3_256   HashAlgorithm = "SHA3-256"
	HashAlgorithmSHA3_384   HashAlgorithm = "SHA3-384"
	HashAlgorithmSHA3_512   HashAlgorithm = "SHA3-512"
	HashAlgorithmBLAKE2b256 HashAlgorithm = "BLAKE2b-256"
	HashAlgorithmBLAKE2b384 HashAlgorithm = "BLAKE2b-384"
	HashAlgorithmBLAKE2b512 HashAlgorithm = "BLAKE2b-512"
	HashAlgorithmBLAKE3     HashAlgorithm = "BLAKE3"
)

// hashDigestLengths maps each algorithm to its hex digest length.
var hashDigestLengths = map[HashAlgorithm]int{
	HashAlgorithmMD5:        32,
	HashAlgorithmSHA1:       40,
	HashAlgorithmSHA256:     64,
	HashAlgorithmSHA384:     96,
	HashAlgorithmSHA512:     128,
	HashAlgorithmSHA3_256:   64,
	HashAlgorithmSHA3_384:   96,
	HashAlgorithmSHA3_512:   128,
	HashAlgorithmBLAKE2b256: 64,
	HashAlgorithmBLAKE2b384: 96,
	HashAlgorithmBLAKE2b512: 128,
	HashAlgorithmBLAKE3:     64,
}

var hashValuePatterns = map[int]*regexp.Regexp{
	32:  regexp.MustCompile(`^[a-fA-F0-9]{32}$`),
	40:  regexp.MustCompile(`^[a-fA-F0-9]{40}$`),
	64:  regexp.MustCompile(`^[a-fA-F0-9]{64}$`),
	96:  regexp.MustCompile(`^[a-fA-F0-9]{96}$`),
	128: regexp.MustCompile(`^[a-fA-F0-9]{128}$`),
}

// anyHashValuePattern is used when the algorithm is not recognized, so the
// digest still gets a syntactic check.
var anyHashValuePattern = regexp.MustCompile(`^([a-fA-F0-9]{32}|[a-fA-F0-9]{40}|[a-fA-F0-9]{64}|[a-fA-F0-9]{96}|[a-fA-F0-9]{128})$`)

// WellKnown reports whether the algorithm belongs to the spec vocabulary.
func (h HashAlgorithm) WellKnown() bool {
	_, ok := hashDigestLengths[h]
	return ok
}

func (h HashAlgorithm) String() string {
	return string(h)
}

func (h HashAlgorithm) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !h.WellKnown() {
		return validate.FailUnknown("HashAlgorithm", ctx)
	}
	return validate.Pass()
}

// HashValue is the hex digest of a hash.
type HashValue string

func (h HashValue) String() string {
	return string(h)
}

func (h HashValue) validateFor(alg HashAlgorithm, ctx validate.Context) validate.Result {
	pattern := anyHashValuePattern
	if length, ok := hashDigestLengths[alg]; ok {
		pattern = hashValuePatterns[length]
	}
	if !pattern.MatchString(string(h)) {
		return validate.Fail("HashValue does not match the expected format for the algorithm", ctx)
	}
	return validate.Pass()
}

// Hash pairs an algorithm with its hex digest.
type Hash struct {
	Alg     HashAlgorithm
	Content HashValue
}

func (h Hash) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := h.Alg.Validate(version, ctx.Extend(validate.Struct("Hash", "alg")))
	return result.Merge(h.Content.validateFor(h.Alg, ctx.Extend(validate.Struct("Hash", "content"))))
}

// Hashes is a list of hashes.
type Hashes []Hash

func (h Hashes) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, hash := range h {
		result = result.Merge(hash.Validate(version, ctx.Extend(validate.Struct("Hashes", "inner"), validate.Array(i))))
	}
	return result
}
