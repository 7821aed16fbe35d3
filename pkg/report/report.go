// Package report defines the observer contract for protocol narration.
// The protocol core never writes to a console; it emits typed events to a
// Sink, and the caller decides how to render them. What is reported, and
// in what order, is part of the design contract; the rendering is not.
package report

import (
	"time"

	"github.com/quorumkey/dkgsim/pkg/party"
)

// Event is a structured observation emitted during a session.
type Event interface {
	// Kind is a short stable label for the event type.
	Kind() string
}

// Sink receives every event of a session, in emission order.
type Sink interface {
	Emit(Event)
}

// SessionStarted is emitted once, before round 0.
type SessionStarted struct {
	SID        string
	Nodes      int
	Threshold  int
	Scheme     string
	ShareField string
	KeyField   string
}

func (SessionStarted) Kind() string { return "session_started" }

// PhaseStarted marks the beginning of a protocol phase.
type PhaseStarted struct {
	Name string
}

func (PhaseStarted) Kind() string { return "phase_started" }

// PolynomialGenerated reports a participant's round 0 generation step.
type PolynomialGenerated struct {
	Node         party.ID
	Coefficients int
}

func (PolynomialGenerated) Kind() string { return "polynomial_generated" }

// CommitmentsComputed reports a participant's round 0 commitment step.
type CommitmentsComputed struct {
	Node        party.ID
	Commitments int
}

func (CommitmentsComputed) Kind() string { return "commitments_computed" }

// CommitmentsBroadcast marks the coordinator's commitment assembly.
type CommitmentsBroadcast struct {
	Nodes int
}

func (CommitmentsBroadcast) Kind() string { return "commitments_broadcast" }

// SharesCreated reports a participant's round 1 share evaluation. Values
// carries the outgoing shares in recipient order, hex encoded.
type SharesCreated struct {
	Node   party.ID
	Count  int
	Values []string
}

func (SharesCreated) Kind() string { return "shares_created" }

// SharesDistributed marks the coordinator's all-to-all delivery.
type SharesDistributed struct {
	Deliveries int
}

func (SharesDistributed) Kind() string { return "shares_distributed" }

// SharesVerified reports a participant's round 2 verification outcome.
type SharesVerified struct {
	Node  party.ID
	Valid bool
}

func (SharesVerified) Kind() string { return "shares_verified" }

// SecretShareComputed carries a participant's derived secret share, hex
// encoded.
type SecretShareComputed struct {
	Node  party.ID
	Share string
}

func (SecretShareComputed) Kind() string { return "secret_share_computed" }

// GroupKeyComputed carries a participant's derived group key, hex encoded.
type GroupKeyComputed struct {
	Node party.ID
	Key  string
}

func (GroupKeyComputed) Kind() string { return "group_key_computed" }

// FieldMismatch warns that the share and key reductions use different
// orders, an inconsistency inherited from the reference model.
type FieldMismatch struct {
	ShareField string
	KeyField   string
}

func (FieldMismatch) Kind() string { return "field_mismatch" }

// CheckCompleted reports one post-protocol verifier check.
type CheckCompleted struct {
	Name   string
	Status string
	Detail string
}

func (CheckCompleted) Kind() string { return "check_completed" }

// Summary is emitted once, after verification, with the cost estimate.
type Summary struct {
	Cycles   uint64
	Estimate time.Duration
}

func (Summary) Kind() string { return "summary" }

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(Event) {}
