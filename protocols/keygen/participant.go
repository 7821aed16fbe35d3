package keygen

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/quorumkey/dkgsim/pkg/commitment"
	"github.com/quorumkey/dkgsim/pkg/math/polynomial"
	"github.com/quorumkey/dkgsim/pkg/party"
)

// Participant is one party's state over a single keygen session. All of
// its operations are driven by the Coordinator in strict round order; the
// state machine rejects any call made out of turn.
type Participant struct {
	id    party.ID
	// ids is the session's full participant set; deliveries from outside
	// it are rejected.
	ids   party.IDSlice
	cfg   *Config
	state State

	// poly is the secret polynomial; its constant term is this party's
	// contribution to the group secret.
	poly *polynomial.Polynomial
	// commitments binds the coefficients, same indexing as the
	// coefficient slice.
	commitments []commitment.Value

	// outgoing maps recipient id to the share f(id+1), one entry per
	// session participant including ourselves.
	outgoing map[party.ID]*saferith.Nat
	// incoming accumulates (sender, share) pairs in delivery order.
	incoming []receivedShare
	// senders tracks which parties have delivered, for duplicate
	// rejection when the session is configured for it.
	senders map[party.ID]struct{}

	secretShare *saferith.Nat
	groupKey    *saferith.Nat
}

type receivedShare struct {
	From  party.ID
	Value *saferith.Nat
}

// NewParticipant creates a participant in the Created state.
func NewParticipant(id party.ID, cfg *Config) *Participant {
	return &Participant{
		id:      id,
		ids:     party.NewIDSlice(cfg.Nodes),
		cfg:     cfg,
		state:   Created,
		senders: make(map[party.ID]struct{}, cfg.Nodes),
	}
}

// ID returns the participant's session-unique identifier.
func (p *Participant) ID() party.ID { return p.id }

// State returns the participant's current state.
func (p *Participant) State() State { return p.state }

// Commitments returns the participant's commitment vector, one value per
// polynomial coefficient. Only populated from CommitmentsReady onward.
func (p *Participant) Commitments() []commitment.Value { return p.commitments }

// OutgoingShare returns the share created for the given recipient.
func (p *Participant) OutgoingShare(to party.ID) *saferith.Nat { return p.outgoing[to] }

// SecretShare returns the aggregated secret share, or nil before
// SecretShareReady.
func (p *Participant) SecretShare() *saferith.Nat { return p.secretShare }

// GroupKey returns the derived group key, or nil before GroupKeyReady.
func (p *Participant) GroupKey() *saferith.Nat { return p.groupKey }

// GeneratePolynomial draws threshold+1 coefficients from rand and stores
// them as the secret polynomial. Requires the Created state.
func (p *Participant) GeneratePolynomial(rand io.Reader) error {
	if p.state != Created {
		return &TransitionError{Node: p.id, Op: "GeneratePolynomial", State: p.state}
	}
	if p.cfg.Threshold < 1 {
		return fmt.Errorf("%w: threshold %d < 1", ErrInvalidThreshold, p.cfg.Threshold)
	}
	p.poly = polynomial.New(rand, p.cfg.ShareField, p.cfg.Threshold)
	p.state = PolynomialReady
	return nil
}

// ComputeCommitments produces one commitment per coefficient through the
// session's commitment scheme. Requires PolynomialReady.
func (p *Participant) ComputeCommitments() error {
	if p.state != PolynomialReady {
		return &TransitionError{Node: p.id, Op: "ComputeCommitments", State: p.state}
	}
	coefficients := p.poly.Coefficients()
	p.commitments = make([]commitment.Value, len(coefficients))
	for i, c := range coefficients {
		p.commitments[i] = p.cfg.Scheme.Commit(c)
	}
	p.state = CommitmentsReady
	return nil
}

// CreateShares evaluates the polynomial at the 1-indexed point of every
// session member, ourselves included. Requires CommitmentsReady.
func (p *Participant) CreateShares() error {
	if p.state != CommitmentsReady {
		return &TransitionError{Node: p.id, Op: "CreateShares", State: p.state}
	}
	p.outgoing = make(map[party.ID]*saferith.Nat, len(p.ids))
	for _, to := range p.ids {
		p.outgoing[to] = p.poly.Evaluate(to.EvaluationPoint())
	}
	p.state = SharesCreated
	return nil
}

// ReceiveShare appends a (sender, value) pair delivered by the driver.
// The sender must be a member of the session. Repeated delivery from the
// same sender is accepted, and summed into the aggregate, unless the
// session rejects duplicates. The participant advances to SharesReceived
// once the full recipient set has delivered.
func (p *Participant) ReceiveShare(from party.ID, value *saferith.Nat) error {
	if !p.ids.Contains(from) {
		return fmt.Errorf("%w: node %d received from %d", ErrUnknownSender, p.id, from)
	}
	if _, ok := p.senders[from]; ok && p.cfg.RejectDuplicates {
		return fmt.Errorf("%w: node %d from %d", ErrDuplicateShare, p.id, from)
	}
	p.senders[from] = struct{}{}
	p.incoming = append(p.incoming, receivedShare{From: from, Value: value})
	if p.state == SharesCreated && len(p.incoming) == p.cfg.Nodes {
		p.state = SharesReceived
	}
	return nil
}

// VerifyShares checks every received share against its sender's published
// commitment vector, using the session's commitment scheme at our own
// evaluation point. Requires SharesReceived.
func (p *Participant) VerifyShares(allCommitments [][]commitment.Value) error {
	if p.state != SharesReceived {
		return &TransitionError{Node: p.id, Op: "VerifyShares", State: p.state}
	}
	for _, share := range p.incoming {
		if int(share.From) >= len(allCommitments) {
			return fmt.Errorf("%w: node %d: no commitments for sender %d",
				ErrShareVerificationFailed, p.id, share.From)
		}
		if !p.cfg.Scheme.VerifyShare(share.Value, allCommitments[share.From], p.id.EvaluationPoint()) {
			return fmt.Errorf("%w: node %d rejects share from %d",
				ErrShareVerificationFailed, p.id, share.From)
		}
	}
	return nil
}

// ComputeSecretShare sums every received share value in the share field.
// Requires the full set of N shares; the derivation happens exactly once
// per session.
func (p *Participant) ComputeSecretShare() error {
	if len(p.incoming) < p.cfg.Nodes {
		return fmt.Errorf("%w: node %d holds %d of %d shares",
			ErrIncompleteShareSet, p.id, len(p.incoming), p.cfg.Nodes)
	}
	if p.state != SharesReceived {
		return &TransitionError{Node: p.id, Op: "ComputeSecretShare", State: p.state}
	}
	sum := new(saferith.Nat).SetUint64(0)
	for _, share := range p.incoming {
		sum = p.cfg.ShareField.Add(sum, share.Value)
	}
	p.secretShare = sum
	p.state = SecretShareReady
	return nil
}

// ComputeGroupKey sums the zero-index commitment of every participant's
// vector in the key field. Requires SecretShareReady.
func (p *Participant) ComputeGroupKey(allCommitments [][]commitment.Value) error {
	if p.state != SecretShareReady {
		return &TransitionError{Node: p.id, Op: "ComputeGroupKey", State: p.state}
	}
	key := new(saferith.Nat).SetUint64(0)
	for _, vector := range allCommitments {
		if len(vector) == 0 {
			return fmt.Errorf("keygen: node %d: empty commitment vector", p.id)
		}
		key = p.cfg.KeyField.Add(key, vector[0].Nat())
	}
	p.groupKey = key
	p.state = GroupKeyReady
	return nil
}
