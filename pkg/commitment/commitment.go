// Package commitment defines the injectable capability that binds
// polynomial coefficients to public values, together with the share check
// a recipient runs against a dealer's published commitments.
//
// Two backends are provided. The mock scheme hashes the coefficient and
// accepts every share, reproducing the structural model's behavior. The
// feldman scheme commits by scalar-base multiplication on secp256k1 and
// performs the real verifiable-secret-sharing check, so failure paths can
// be tested without changing any protocol logic.
package commitment

import (
	"bytes"

	"github.com/cronokirby/saferith"
)

// Value is the public binding value for a single polynomial coefficient.
// It reveals nothing about the coefficient but allows later verification.
type Value []byte

// Nat returns the numeric view of the value, used by the group-key
// aggregation.
func (v Value) Nat() *saferith.Nat {
	return new(saferith.Nat).SetBytes(v)
}

// Equal reports whether two values are bit-identical.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v, other)
}

// Scheme is the commitment capability handed to every participant.
type Scheme interface {
	// Commit produces the binding value for one coefficient.
	Commit(scalar *saferith.Nat) Value

	// VerifyShare checks a received share against the sender's published
	// commitments at the given evaluation point. Implementations that
	// cannot verify (the mock scheme) accept unconditionally.
	VerifyShare(share *saferith.Nat, commitments []Value, x uint64) bool

	// Name identifies the scheme in events and logs.
	Name() string
}
