package keygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumkey/dkgsim/pkg/party"
)

// fakeParticipant builds a participant with the given final values, for
// exercising the verifier in isolation.
func fakeParticipant(t *testing.T, cfg *Config, id uint32, share, key uint64) *Participant {
	t.Helper()
	p := NewParticipant(party.ID(id), cfg)
	p.secretShare = cfg.ShareField.FromUint64(share)
	p.groupKey = cfg.KeyField.FromUint64(key)
	p.state = GroupKeyReady
	return p
}

func TestVerifyAllOK(t *testing.T) {
	cfg := testConfig(20)
	participants := []*Participant{
		fakeParticipant(t, cfg, 0, 11, 99),
		fakeParticipant(t, cfg, 1, 22, 99),
		fakeParticipant(t, cfg, 2, 33, 99),
	}
	checks := Verify(participants)
	require.Len(t, checks, 3)
	for _, c := range checks {
		assert.Equal(t, StatusOK, c.Status, "%s: %s", c.Name, c.Detail)
	}
}

func TestVerifyZeroShareIsError(t *testing.T) {
	cfg := testConfig(21)
	participants := []*Participant{
		fakeParticipant(t, cfg, 0, 0, 99),
		fakeParticipant(t, cfg, 1, 22, 99),
	}
	checks := Verify(participants)
	assert.Equal(t, StatusError, checks[0].Status)
	assert.Equal(t, "nonzero-shares", checks[0].Name)
}

func TestVerifyIdenticalSharesIsWarning(t *testing.T) {
	cfg := testConfig(22)
	participants := []*Participant{
		fakeParticipant(t, cfg, 0, 11, 99),
		fakeParticipant(t, cfg, 1, 11, 99),
	}
	checks := Verify(participants)
	assert.Equal(t, StatusWarning, checks[1].Status)
	assert.Equal(t, "distinct-shares", checks[1].Name)
	// A warning alone does not fail the run.
	result := &Result{Checks: checks}
	assert.False(t, result.Failed())
}

func TestVerifyGroupKeyDisagreementIsError(t *testing.T) {
	cfg := testConfig(23)
	participants := []*Participant{
		fakeParticipant(t, cfg, 0, 11, 99),
		fakeParticipant(t, cfg, 1, 22, 100),
	}
	checks := Verify(participants)
	assert.Equal(t, StatusError, checks[2].Status)
	assert.Equal(t, "group-key-agreement", checks[2].Name)
	result := &Result{Checks: checks}
	assert.True(t, result.Failed())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "WARNING", StatusWarning.String())
	assert.Equal(t, "ERROR", StatusError.String())
}
