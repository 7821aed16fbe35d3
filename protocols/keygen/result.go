package keygen

import (
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/quorumkey/dkgsim/pkg/party"
)

// NodeResult is one participant's final output.
type NodeResult struct {
	ID          party.ID `cbor:"id"`
	SecretShare []byte   `cbor:"secretShare"`
	GroupKey    []byte   `cbor:"groupKey"`
}

// Result is the outcome of a full session: per-node outputs, the verifier
// findings, and the cost estimate.
type Result struct {
	SID      string        `cbor:"sid"`
	Nodes    []NodeResult  `cbor:"nodes"`
	Checks   []CheckResult `cbor:"checks"`
	Cycles   uint64        `cbor:"cycles"`
	Estimate time.Duration `cbor:"estimate"`
}

// Failed reports whether any check ended in StatusError. Warnings do not
// fail a run.
func (r *Result) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == StatusError {
			return true
		}
	}
	return false
}

// resultAlias strips Result's method set so cbor encodes the struct fields
// instead of recursing back into MarshalBinary/UnmarshalBinary.
type resultAlias Result

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (r *Result) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*resultAlias)(r))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using CBOR.
func (r *Result) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, (*resultAlias)(r))
}
