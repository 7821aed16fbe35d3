package keygen

import (
	"errors"
	"fmt"

	"github.com/quorumkey/dkgsim/pkg/party"
)

var (
	// ErrInvalidThreshold indicates a threshold below 1, or one for which
	// threshold+1 exceeds the participant count.
	ErrInvalidThreshold = errors.New("keygen: invalid threshold")

	// ErrIncompleteShareSet indicates secret-share aggregation was
	// attempted before all N shares arrived.
	ErrIncompleteShareSet = errors.New("keygen: incomplete share set")

	// ErrShareVerificationFailed indicates a received share is
	// inconsistent with the sender's published commitments. The mock
	// scheme never raises it.
	ErrShareVerificationFailed = errors.New("keygen: share verification failed")

	// ErrModulusMismatch indicates the share and key field orders differ.
	// Only raised when the session is configured with StrictFields;
	// otherwise the mismatch is surfaced as a warning event.
	ErrModulusMismatch = errors.New("keygen: share and key field orders differ")

	// ErrDuplicateShare indicates a sender delivered more than one share.
	// Only raised when the session is configured with RejectDuplicates.
	ErrDuplicateShare = errors.New("keygen: duplicate share delivery")

	// ErrUnknownSender indicates a share delivery from an id outside the
	// session's participant set.
	ErrUnknownSender = errors.New("keygen: unknown sender")
)

// TransitionError reports an operation called outside its required state.
type TransitionError struct {
	Node  party.ID
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("keygen: node %d: %s not allowed in state %s", e.Node, e.Op, e.State)
}
