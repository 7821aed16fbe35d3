package polynomial

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/quorumkey/dkgsim/pkg/math/arith"
	"github.com/quorumkey/dkgsim/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ with coefficients in
// a fixed field, stored lowest degree first. The constant term a₀ is the
// owner's contribution to the group secret.
type Polynomial struct {
	field        arith.Field
	coefficients []*saferith.Nat
}

// New samples a polynomial of the given degree with uniform nonzero
// coefficients drawn from rand.
func New(rand io.Reader, field arith.Field, degree int) *Polynomial {
	p := &Polynomial{
		field:        field,
		coefficients: make([]*saferith.Nat, degree+1),
	}
	for i := range p.coefficients {
		p.coefficients[i] = sample.Scalar(rand, field)
	}
	return p
}

// Evaluate computes f(x) using Horner's method, iterating from the highest
// degree coefficient down and reducing into the field at each step.
func (p *Polynomial) Evaluate(x uint64) *saferith.Nat {
	if x == 0 {
		panic("polynomial: evaluation at zero leaks the constant term")
	}
	point := new(saferith.Nat).SetUint64(x)
	result := new(saferith.Nat).SetUint64(0)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ·x + aₙ₋₁
		result = p.field.MulAdd(result, point, p.coefficients[i])
	}
	return result
}

// Constant returns the constant coefficient a₀.
func (p *Polynomial) Constant() *saferith.Nat {
	return p.coefficients[0]
}

// Coefficients returns the coefficient slice, lowest degree first.
func (p *Polynomial) Coefficients() []*saferith.Nat {
	return p.coefficients
}

// Degree is the highest power of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}
