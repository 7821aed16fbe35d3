package sample

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumkey/dkgsim/pkg/math/arith"
)

func TestScalarInRange(t *testing.T) {
	f := arith.PowerOfTwo(32)
	rand := NewSeededReader(1)
	for i := 0; i < 256; i++ {
		s := Scalar(rand, f)
		require.NotEqual(t, uint64(1), uint64(s.EqZero()), "sampled zero")
		_, _, lt := s.CmpMod(f.Order())
		require.Equal(t, 1, int(lt), "sampled value above the order")
	}
}

func TestScalarCurveOrder(t *testing.T) {
	f := arith.Secp256k1Order()
	rand := NewSeededReader(2)
	for i := 0; i < 16; i++ {
		s := Scalar(rand, f)
		_, _, lt := s.CmpMod(f.Order())
		require.Equal(t, 1, int(lt))
	}
}

func TestSeededReaderDeterministic(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)

	_, err := io.ReadFull(NewSeededReader(42), a)
	require.NoError(t, err)
	_, err = io.ReadFull(NewSeededReader(42), b)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = io.ReadFull(NewSeededReader(43), b)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSeededScalarDeterministic(t *testing.T) {
	f := arith.PowerOfTwo(32)
	a := Scalar(NewSeededReader(7), f)
	b := Scalar(NewSeededReader(7), f)
	assert.Equal(t, 1, int(a.Eq(b)))
}
