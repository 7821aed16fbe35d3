package keygen

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/quorumkey/dkgsim/pkg/commitment"
	"github.com/quorumkey/dkgsim/pkg/cycles"
	"github.com/quorumkey/dkgsim/pkg/math/arith"
	"github.com/quorumkey/dkgsim/pkg/report"
)

// Reference defaults, carried from the original model.
const (
	DefaultNodes     = 4
	DefaultThreshold = 2
	DefaultSeed      = 42

	defaultShareFieldBits = 32
	defaultKeyFieldBits   = 48
)

// Config describes a single keygen session. DefaultConfig supplies the
// reference session; the zero value of every remaining optional field
// selects the reference behavior.
type Config struct {
	// Nodes is the number of participants N.
	Nodes int
	// Threshold is the polynomial degree t; t+1 shares reconstruct the
	// secret. Must be at least 1: an explicit 0 fails validation rather
	// than selecting a default.
	Threshold int

	// ShareField is the order all share arithmetic is reduced into.
	// Defaults to the mock 2^32 field.
	ShareField arith.Field
	// KeyField is the order the group-key aggregation is reduced into.
	// Defaults to the mock 2^48 field. The reference model's asymmetry
	// against ShareField is preserved by default but never silently:
	// setup emits a FieldMismatch warning when the two differ.
	KeyField arith.Field

	// Scheme is the commitment capability. Defaults to the mock hash
	// scheme.
	Scheme commitment.Scheme

	// Rand supplies polynomial coefficients. Defaults to
	// crypto/rand.Reader; pass sample.NewSeededReader for a reproducible
	// run.
	Rand io.Reader

	// Sink receives the session's events. Defaults to report.Nop.
	Sink report.Sink

	// ClockHz is the clock frequency for the cycle estimate. Defaults to
	// cycles.DefaultClockHz.
	ClockHz uint64

	// StrictFields makes setup fail with ErrModulusMismatch when
	// ShareField and KeyField differ, instead of warning.
	StrictFields bool

	// RejectDuplicates makes ReceiveShare fail with ErrDuplicateShare on
	// repeated delivery from the same sender, instead of summing the
	// duplicates into the aggregate.
	RejectDuplicates bool
}

// DefaultConfig returns the reference session: 4 nodes, threshold 2,
// with every remaining field left to its zero-value default.
func DefaultConfig() *Config {
	return &Config{Nodes: DefaultNodes, Threshold: DefaultThreshold}
}

func (c *Config) normalize() {
	if c.ShareField.Order() == nil {
		c.ShareField = arith.PowerOfTwo(defaultShareFieldBits)
	}
	if c.KeyField.Order() == nil {
		c.KeyField = arith.PowerOfTwo(defaultKeyFieldBits)
	}
	if c.Scheme == nil {
		c.Scheme = commitment.HashScheme{}
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	if c.Sink == nil {
		c.Sink = report.Nop{}
	}
	if c.ClockHz == 0 {
		c.ClockHz = cycles.DefaultClockHz
	}
}

func (c *Config) validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("%w: threshold %d < 1", ErrInvalidThreshold, c.Threshold)
	}
	if c.Threshold+1 > c.Nodes {
		return fmt.Errorf("%w: threshold %d requires at least %d of %d nodes",
			ErrInvalidThreshold, c.Threshold, c.Threshold+1, c.Nodes)
	}
	if c.StrictFields && !c.ShareField.Equal(c.KeyField) {
		return fmt.Errorf("%w: share %s, key %s",
			ErrModulusMismatch, c.ShareField.Name(), c.KeyField.Name())
	}
	return nil
}
