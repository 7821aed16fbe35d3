package commitment

import (
	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// FeldmanScheme commits to a coefficient aⱼ as the compressed encoding of
// aⱼ·G on secp256k1, and verifies a received share f(x) by checking
//
//	f(x)·G == Σⱼ xʲ·Cⱼ
//
// Sessions using this scheme must do their polynomial arithmetic in the
// secp256k1 scalar field (arith.Secp256k1Order), otherwise the check
// cannot hold.
type FeldmanScheme struct{}

var _ Scheme = FeldmanScheme{}

// Commit implements Scheme.
func (FeldmanScheme) Commit(scalar *saferith.Nat) Value {
	var k secp256k1.ModNScalar
	k.SetByteSlice(scalarBytes(scalar))

	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &p)
	p.ToAffine()
	return secp256k1.NewPublicKey(&p.X, &p.Y).SerializeCompressed()
}

// VerifyShare implements Scheme.
func (FeldmanScheme) VerifyShare(share *saferith.Nat, commitments []Value, x uint64) bool {
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(scalarBytes(share)); overflow {
		return false
	}

	var lhs secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &lhs)

	// rhs = Σⱼ xʲ·Cⱼ, accumulating xʲ as a running scalar.
	var point secp256k1.ModNScalar
	point.SetInt(uint32(x))
	var power secp256k1.ModNScalar
	power.SetInt(1)

	var rhs secp256k1.JacobianPoint
	for _, c := range commitments {
		pub, err := secp256k1.ParsePubKey(c)
		if err != nil {
			return false
		}
		var term, scaled, sum secp256k1.JacobianPoint
		pub.AsJacobian(&term)
		secp256k1.ScalarMultNonConst(&power, &term, &scaled)
		secp256k1.AddNonConst(&rhs, &scaled, &sum)
		rhs = sum
		power.Mul(&point)
	}

	lhs.ToAffine()
	rhs.ToAffine()
	return lhs.X.Equals(&rhs.X) && lhs.Y.Equals(&rhs.Y) && lhs.Z.Equals(&rhs.Z)
}

// Name implements Scheme.
func (FeldmanScheme) Name() string { return "feldman" }

func scalarBytes(scalar *saferith.Nat) []byte {
	return scalar.Big().FillBytes(make([]byte, 32))
}
