package common

// DomainSeparationTag values used to derive nothing-up-my-sleeve curve
// points that do not depend on any witness data, following the
// domain-separation convention of the BLS signature suites.
const (
	// DSTBlindingG1 domain-separates the derivation of the G1 blinding
	// generator h1 used in the zero-knowledge commitments.
	DSTBlindingG1 = "DORY_BLS12381G1_XMD:SHA-256_SSWU_RO_H1_"

	// DSTBlindingG2 domain-separates the derivation of the G2 blinding
	// generator h2.
	DSTBlindingG2 = "DORY_BLS12381G2_XMD:SHA-256_SSWU_RO_H2_"

	// DSTTranscript is a domain-separation string for the Fiat-Shamir
	// transcript. pkg/transcript does not absorb it: its challenges are
	// separated only by the absorbed fields and the counter nonce.
	DSTTranscript = "DORY_TRANSCRIPT_BLAKE2B_V1_"
)
