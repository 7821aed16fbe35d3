package keygen

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/rs/xid"

	"github.com/quorumkey/dkgsim/pkg/commitment"
	"github.com/quorumkey/dkgsim/pkg/cycles"
	"github.com/quorumkey/dkgsim/pkg/party"
	"github.com/quorumkey/dkgsim/pkg/report"
)

// Coordinator drives a single session through its three rounds:
// commitment (round 0), share distribution (round 1), and verification
// with key derivation (round 2). Execution is strictly sequential and
// fail-fast: any operation error aborts the session with no retry and no
// partial-failure recovery.
type Coordinator struct {
	cfg *Config
	sid xid.ID

	participants []*Participant
	// allCommitments collects every participant's commitment vector,
	// ordered by id. The assembly stands in for a broadcast and is not
	// itself validated.
	allCommitments [][]commitment.Value

	acct cycles.Accountant
}

// shareMessage is the encoded form a share travels in between sender and
// receiver. Routing through an encoding keeps the hand-off explicit even
// though no real transport is involved.
type shareMessage struct {
	From  uint32 `cbor:"from"`
	To    uint32 `cbor:"to"`
	Share []byte `cbor:"share"`
}

// NewSession validates the configuration and creates the participant set.
// A threshold below 1, or one requiring more than Nodes shares, fails with
// ErrInvalidThreshold before round 0 begins.
func NewSession(cfg *Config) (*Coordinator, error) {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Coordinator{
		cfg:          cfg,
		sid:          xid.New(),
		participants: make([]*Participant, cfg.Nodes),
	}
	for i := range c.participants {
		c.participants[i] = NewParticipant(party.ID(i), cfg)
	}

	cfg.Sink.Emit(report.SessionStarted{
		SID:        c.sid.String(),
		Nodes:      cfg.Nodes,
		Threshold:  cfg.Threshold,
		Scheme:     cfg.Scheme.Name(),
		ShareField: cfg.ShareField.Name(),
		KeyField:   cfg.KeyField.Name(),
	})
	if !cfg.ShareField.Equal(cfg.KeyField) {
		cfg.Sink.Emit(report.FieldMismatch{
			ShareField: cfg.ShareField.Name(),
			KeyField:   cfg.KeyField.Name(),
		})
	}
	return c, nil
}

// Participants returns the session's participant collection, ordered by id.
func (c *Coordinator) Participants() []*Participant {
	return c.participants
}

// Run executes the three rounds and the post-protocol checks, and returns
// the session result. The session is one-shot; it is discarded after the
// report.
func (c *Coordinator) Run() (*Result, error) {
	if err := c.round0(); err != nil {
		return nil, fmt.Errorf("round 0: %w", err)
	}
	if err := c.round1(); err != nil {
		return nil, fmt.Errorf("round 1: %w", err)
	}
	if err := c.round2(); err != nil {
		return nil, fmt.Errorf("round 2: %w", err)
	}

	checks := Verify(c.participants)
	for _, check := range checks {
		c.cfg.Sink.Emit(report.CheckCompleted{
			Name:   check.Name,
			Status: check.Status.String(),
			Detail: check.Detail,
		})
	}

	estimate := c.acct.EstimateAt(c.cfg.ClockHz)
	c.cfg.Sink.Emit(report.Summary{Cycles: c.acct.Total(), Estimate: estimate})

	result := &Result{
		SID:      c.sid.String(),
		Nodes:    make([]NodeResult, len(c.participants)),
		Checks:   checks,
		Cycles:   c.acct.Total(),
		Estimate: estimate,
	}
	for i, p := range c.participants {
		result.Nodes[i] = NodeResult{
			ID:          p.ID(),
			SecretShare: p.SecretShare().Bytes(),
			GroupKey:    p.GroupKey().Bytes(),
		}
	}
	return result, nil
}

// round0 generates every polynomial, computes every commitment vector, and
// assembles the broadcast commitment table.
func (c *Coordinator) round0() error {
	c.cfg.Sink.Emit(report.PhaseStarted{Name: "round 0: commitment"})

	for _, p := range c.participants {
		if err := p.GeneratePolynomial(c.cfg.Rand); err != nil {
			return err
		}
		c.acct.Add(cycles.CostGenerate)
		c.cfg.Sink.Emit(report.PolynomialGenerated{
			Node:         p.ID(),
			Coefficients: c.cfg.Threshold + 1,
		})
	}

	for _, p := range c.participants {
		if err := p.ComputeCommitments(); err != nil {
			return err
		}
		c.acct.Add(cycles.CostCommit)
		c.cfg.Sink.Emit(report.CommitmentsComputed{
			Node:        p.ID(),
			Commitments: len(p.Commitments()),
		})
	}

	c.allCommitments = make([][]commitment.Value, len(c.participants))
	for i, p := range c.participants {
		c.allCommitments[i] = p.Commitments()
	}
	c.acct.Add(cycles.CostBroadcast)
	c.cfg.Sink.Emit(report.CommitmentsBroadcast{Nodes: len(c.participants)})
	return nil
}

// round1 creates every outgoing share set and performs the full N×N
// all-to-all delivery, with no loss and no reordering.
func (c *Coordinator) round1() error {
	c.cfg.Sink.Emit(report.PhaseStarted{Name: "round 1: share distribution"})

	n := len(c.participants)
	for _, p := range c.participants {
		if err := p.CreateShares(); err != nil {
			return err
		}
		c.acct.Add(uint64(n) * cycles.CostSharePer)
		values := make([]string, n)
		for i, to := range party.NewIDSlice(n) {
			values[i] = p.OutgoingShare(to).Big().Text(16)
		}
		c.cfg.Sink.Emit(report.SharesCreated{Node: p.ID(), Count: n, Values: values})
	}

	deliveries := 0
	for _, sender := range c.participants {
		for _, receiver := range c.participants {
			if err := c.deliver(sender, receiver); err != nil {
				return err
			}
			deliveries++
		}
	}
	c.acct.Add(cycles.CostDistribute)
	c.cfg.Sink.Emit(report.SharesDistributed{Deliveries: deliveries})
	return nil
}

// deliver routes one share from sender to receiver through its encoded
// form.
func (c *Coordinator) deliver(sender, receiver *Participant) error {
	wire, err := cbor.Marshal(shareMessage{
		From:  uint32(sender.ID()),
		To:    uint32(receiver.ID()),
		Share: sender.OutgoingShare(receiver.ID()).Bytes(),
	})
	if err != nil {
		return fmt.Errorf("encode share %d->%d: %w", sender.ID(), receiver.ID(), err)
	}
	var msg shareMessage
	if err := cbor.Unmarshal(wire, &msg); err != nil {
		return fmt.Errorf("decode share %d->%d: %w", sender.ID(), receiver.ID(), err)
	}
	value := new(saferith.Nat).SetBytes(msg.Share)
	return receiver.ReceiveShare(party.ID(msg.From), value)
}

// round2 verifies the received shares, aggregates every secret share, and
// derives every group key, in that order across all participants.
func (c *Coordinator) round2() error {
	c.cfg.Sink.Emit(report.PhaseStarted{Name: "round 2: verification and key derivation"})

	for _, p := range c.participants {
		if err := p.VerifyShares(c.allCommitments); err != nil {
			return err
		}
		c.acct.Add(cycles.CostVerify)
		c.cfg.Sink.Emit(report.SharesVerified{Node: p.ID(), Valid: true})
	}

	for _, p := range c.participants {
		if err := p.ComputeSecretShare(); err != nil {
			return err
		}
		c.acct.Add(cycles.CostAggregate)
		c.cfg.Sink.Emit(report.SecretShareComputed{
			Node:  p.ID(),
			Share: p.SecretShare().Big().Text(16),
		})
	}

	for _, p := range c.participants {
		if err := p.ComputeGroupKey(c.allCommitments); err != nil {
			return err
		}
		c.acct.Add(cycles.CostDeriveKey)
		c.cfg.Sink.Emit(report.GroupKeyComputed{
			Node: p.ID(),
			Key:  p.GroupKey().Big().Text(16),
		})
	}
	return nil
}
