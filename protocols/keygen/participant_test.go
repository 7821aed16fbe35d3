package keygen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumkey/dkgsim/pkg/commitment"
	"github.com/quorumkey/dkgsim/pkg/math/arith"
	"github.com/quorumkey/dkgsim/pkg/math/sample"
	"github.com/quorumkey/dkgsim/pkg/party"
)

func testConfig(seed uint64) *Config {
	cfg := DefaultConfig()
	cfg.Rand = sample.NewSeededReader(seed)
	cfg.normalize()
	return cfg
}

// runParticipantToShares drives p through round 0 and share creation.
func runParticipantToShares(t *testing.T, p *Participant, cfg *Config) {
	t.Helper()
	require.NoError(t, p.GeneratePolynomial(cfg.Rand))
	require.NoError(t, p.ComputeCommitments())
	require.NoError(t, p.CreateShares())
}

func TestParticipantStateOrder(t *testing.T) {
	cfg := testConfig(1)
	p := NewParticipant(0, cfg)
	require.Equal(t, Created, p.State())

	require.NoError(t, p.GeneratePolynomial(cfg.Rand))
	require.Equal(t, PolynomialReady, p.State())

	require.NoError(t, p.ComputeCommitments())
	require.Equal(t, CommitmentsReady, p.State())
	require.Len(t, p.Commitments(), cfg.Threshold+1)

	require.NoError(t, p.CreateShares())
	require.Equal(t, SharesCreated, p.State())
}

func TestParticipantRejectsOutOfOrderCalls(t *testing.T) {
	cfg := testConfig(2)
	p := NewParticipant(0, cfg)

	var transition *TransitionError

	// Commitments require a polynomial first.
	err := p.ComputeCommitments()
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, Created, transition.State)

	// Shares require commitments first.
	require.ErrorAs(t, p.CreateShares(), &transition)

	// No backward transitions: generating twice is rejected.
	require.NoError(t, p.GeneratePolynomial(cfg.Rand))
	require.ErrorAs(t, p.GeneratePolynomial(cfg.Rand), &transition)
}

func TestGeneratePolynomialInvalidThreshold(t *testing.T) {
	cfg := testConfig(3)
	cfg.Threshold = -1
	p := NewParticipant(0, cfg)
	err := p.GeneratePolynomial(cfg.Rand)
	require.ErrorIs(t, err, ErrInvalidThreshold)
	assert.Equal(t, Created, p.State())
}

func TestComputeSecretShareIncomplete(t *testing.T) {
	cfg := testConfig(4)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	// Only 3 of 4 shares delivered.
	for from := party.ID(0); from < 3; from++ {
		require.NoError(t, p.ReceiveShare(from, cfg.ShareField.FromUint64(uint64(from)+10)))
	}
	err := p.ComputeSecretShare()
	require.ErrorIs(t, err, ErrIncompleteShareSet)
	assert.Equal(t, SharesCreated, p.State())

	// The fourth delivery completes the set.
	require.NoError(t, p.ReceiveShare(3, cfg.ShareField.FromUint64(13)))
	require.Equal(t, SharesReceived, p.State())
	require.NoError(t, p.ComputeSecretShare())
	require.Equal(t, SecretShareReady, p.State())
}

func TestComputeSecretShareSumsInField(t *testing.T) {
	cfg := testConfig(5)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	values := []uint64{1<<32 - 1, 2, 3, 4}
	for i, v := range values {
		require.NoError(t, p.ReceiveShare(party.ID(i), cfg.ShareField.FromUint64(v)))
	}
	require.NoError(t, p.ComputeSecretShare())
	// (2^32 - 1) + 2 + 3 + 4 = 8 mod 2^32.
	assert.Equal(t, uint64(8), p.SecretShare().Big().Uint64())
}

func TestSecretShareDerivedOnce(t *testing.T) {
	cfg := testConfig(6)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)
	for from := party.ID(0); from < party.ID(cfg.Nodes); from++ {
		require.NoError(t, p.ReceiveShare(from, cfg.ShareField.FromUint64(1)))
	}
	require.NoError(t, p.ComputeSecretShare())

	var transition *TransitionError
	require.ErrorAs(t, p.ComputeSecretShare(), &transition)
}

func TestReceiveShareDuplicatesSummedByDefault(t *testing.T) {
	cfg := testConfig(7)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	// The same sender delivers twice; both values enter the aggregate.
	require.NoError(t, p.ReceiveShare(1, cfg.ShareField.FromUint64(5)))
	require.NoError(t, p.ReceiveShare(1, cfg.ShareField.FromUint64(5)))
	require.NoError(t, p.ReceiveShare(2, cfg.ShareField.FromUint64(7)))
	require.NoError(t, p.ReceiveShare(3, cfg.ShareField.FromUint64(9)))

	require.NoError(t, p.ComputeSecretShare())
	assert.Equal(t, uint64(26), p.SecretShare().Big().Uint64())
}

func TestReceiveShareRejectsDuplicatesWhenConfigured(t *testing.T) {
	cfg := testConfig(8)
	cfg.RejectDuplicates = true
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	require.NoError(t, p.ReceiveShare(1, cfg.ShareField.FromUint64(5)))
	err := p.ReceiveShare(1, cfg.ShareField.FromUint64(5))
	require.ErrorIs(t, err, ErrDuplicateShare)
}

func TestReceiveShareRejectsUnknownSender(t *testing.T) {
	cfg := testConfig(12)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	err := p.ReceiveShare(party.ID(cfg.Nodes), cfg.ShareField.FromUint64(1))
	require.ErrorIs(t, err, ErrUnknownSender)
	assert.Equal(t, SharesCreated, p.State())
}

func TestVerifySharesMockAlwaysValid(t *testing.T) {
	cfg := testConfig(9)
	nodes := make([]*Participant, cfg.Nodes)
	for i := range nodes {
		nodes[i] = NewParticipant(party.ID(i), cfg)
		runParticipantToShares(t, nodes[i], cfg)
	}
	all := make([][]commitment.Value, len(nodes))
	for i, p := range nodes {
		all[i] = p.Commitments()
	}
	for _, receiver := range nodes {
		for _, sender := range nodes {
			require.NoError(t, receiver.ReceiveShare(sender.ID(), sender.OutgoingShare(receiver.ID())))
		}
	}
	for _, p := range nodes {
		require.NoError(t, p.VerifyShares(all))
	}
}

func TestVerifySharesFeldmanRejectsCorruption(t *testing.T) {
	field := arith.Secp256k1Order()
	cfg := &Config{
		Nodes:      2,
		Threshold:  1,
		ShareField: field,
		KeyField:   field,
		Scheme:     commitment.FeldmanScheme{},
		Rand:       sample.NewSeededReader(10),
	}
	cfg.normalize()

	p0 := NewParticipant(0, cfg)
	p1 := NewParticipant(1, cfg)
	runParticipantToShares(t, p0, cfg)
	runParticipantToShares(t, p1, cfg)
	all := [][]commitment.Value{p0.Commitments(), p1.Commitments()}

	// Correct delivery verifies.
	require.NoError(t, p1.ReceiveShare(0, p0.OutgoingShare(1)))
	require.NoError(t, p1.ReceiveShare(1, p1.OutgoingShare(1)))
	require.NoError(t, p1.VerifyShares(all))

	// A corrupted share from p1 is rejected by p0.
	corrupted := field.Add(p1.OutgoingShare(0), field.FromUint64(1))
	require.NoError(t, p0.ReceiveShare(0, p0.OutgoingShare(0)))
	require.NoError(t, p0.ReceiveShare(1, corrupted))
	err := p0.VerifyShares(all)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShareVerificationFailed))
}

func TestComputeGroupKeyRequiresSecretShare(t *testing.T) {
	cfg := testConfig(11)
	p := NewParticipant(0, cfg)
	runParticipantToShares(t, p, cfg)

	var transition *TransitionError
	require.ErrorAs(t, p.ComputeGroupKey(nil), &transition)
}
