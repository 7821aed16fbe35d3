package commitment

import (
	"github.com/cronokirby/saferith"

	"github.com/quorumkey/dkgsim/pkg/hash"
)

// HashScheme is the placeholder backend: the commitment is a hash of the
// coefficient's decimal representation, and every share verifies.
type HashScheme struct{}

var _ Scheme = HashScheme{}

// Commit implements Scheme.
func (HashScheme) Commit(scalar *saferith.Nat) Value {
	h := hash.New("dkgsim/commitment")
	_ = h.WriteAny(scalar.Big().Text(10))
	return h.Sum()
}

// VerifyShare implements Scheme. The mock path accepts unconditionally; a
// production scheme must reject shares inconsistent with the commitments.
func (HashScheme) VerifyShare(*saferith.Nat, []Value, uint64) bool {
	return true
}

// Name implements Scheme.
func (HashScheme) Name() string { return "hash" }
