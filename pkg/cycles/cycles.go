// Package cycles provides the additive cost counter used for the
// end-of-run performance estimate. The per-operation costs are fixed
// stand-ins for the real cost of each protocol step; they play no part in
// protocol correctness.
package cycles

import "time"

// Per-operation costs, in cycles.
const (
	CostGenerate   uint64 = 10 // polynomial generation
	CostCommit     uint64 = 30 // scalar multiplication stand-in
	CostBroadcast  uint64 = 5  // commitment broadcast
	CostSharePer   uint64 = 5  // per recipient share evaluation
	CostDistribute uint64 = 10 // all-to-all share delivery
	CostVerify     uint64 = 40 // VSS share check
	CostAggregate  uint64 = 20 // secret share accumulation
	CostDeriveKey  uint64 = 30 // group key point addition stand-in
)

// DefaultClockHz is the clock the reference model estimates against.
const DefaultClockHz uint64 = 100_000_000

// Accountant is a monotonically increasing cycle counter.
type Accountant struct {
	total uint64
}

// Add charges n cycles.
func (a *Accountant) Add(n uint64) {
	a.total += n
}

// Total returns the cycles charged so far.
func (a *Accountant) Total() uint64 {
	return a.total
}

// EstimateAt converts the running total into wall-clock time at the given
// clock frequency.
func (a *Accountant) EstimateAt(hz uint64) time.Duration {
	if hz == 0 {
		hz = DefaultClockHz
	}
	return time.Duration(a.total * uint64(time.Second) / hz)
}
