package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/quorumkey/dkgsim/pkg/math/arith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar samples a uniform element of f in [1, order) by rejection.
// Zero is excluded so that a sampled constant term never produces an
// empty secret contribution.
func Scalar(rand io.Reader, f arith.Field) *saferith.Nat {
	bits := f.Bits()
	buf := make([]byte, (bits+7)/8)
	// Mask the excess top bits so that at least half of all candidates
	// fall below the order.
	excess := len(buf)*8 - bits
	for {
		mustReadBits(rand, buf)
		buf[0] &= 0xFF >> excess
		out := new(saferith.Nat).SetBytes(buf)
		if out.EqZero() == 1 {
			continue
		}
		if _, _, lt := out.CmpMod(f.Order()); lt == 1 {
			return out
		}
	}
}
