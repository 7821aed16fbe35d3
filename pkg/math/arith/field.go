package arith

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Field is the scalar domain that all polynomial arithmetic is reduced
// into. The order is an explicit parameter rather than a hard-coded mask,
// so the mock power-of-two fields and a real group order are
// interchangeable.
//
// A power-of-two order turns reduction into the bit-masking the reference
// model uses; it is not a finite field in the algebraic sense and exists
// only for structural testing.
type Field struct {
	order *saferith.Modulus
	name  string
}

// NewField constructs a field with the given order.
func NewField(order *saferith.Modulus, name string) Field {
	return Field{order: order, name: name}
}

// PowerOfTwo returns the mock field of order 2^bits.
func PowerOfTwo(bits uint) Field {
	b := make([]byte, bits/8+1)
	b[0] = 1 << (bits % 8)
	return Field{
		order: saferith.ModulusFromBytes(b),
		name:  fmt.Sprintf("2^%d", bits),
	}
}

// Secp256k1Order returns the field of order equal to the secp256k1 group
// order, for use with the feldman commitment scheme.
func Secp256k1Order() Field {
	return Field{
		order: saferith.ModulusFromBytes(secp256k1.S256().N.Bytes()),
		name:  "secp256k1",
	}
}

// Order returns the field order.
func (f Field) Order() *saferith.Modulus { return f.order }

// Bits returns the bit length of the field order.
func (f Field) Bits() int { return int(f.order.BitLen()) }

// Name returns a short label for logs and events.
func (f Field) Name() string { return f.name }

// Equal reports whether the two fields have the same order.
func (f Field) Equal(g Field) bool {
	return f.order.Nat().Eq(g.order.Nat()) == 1
}

// Reduce returns x mod the field order as a new Nat.
func (f Field) Reduce(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, f.order)
}

// FromUint64 returns v reduced into the field.
func (f Field) FromUint64(v uint64) *saferith.Nat {
	return f.Reduce(new(saferith.Nat).SetUint64(v))
}

// Add returns a + b mod the field order.
func (f Field) Add(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModAdd(a, b, f.order)
}

// MulAdd returns acc*x + c mod the field order. This is the single Horner
// step; reducing at every step is equivalent to reducing once at the end.
func (f Field) MulAdd(acc, x, c *saferith.Nat) *saferith.Nat {
	out := new(saferith.Nat).ModMul(acc, x, f.order)
	return out.ModAdd(out, c, f.order)
}
