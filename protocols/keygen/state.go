package keygen

// State is a participant's position in the per-party state machine.
// Transitions are strictly forward, one step at a time; calling an
// operation out of order fails and aborts the session.
type State uint8

const (
	Created State = iota
	PolynomialReady
	CommitmentsReady
	SharesCreated
	SharesReceived
	SecretShareReady
	GroupKeyReady
)

func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case PolynomialReady:
		return "PolynomialReady"
	case CommitmentsReady:
		return "CommitmentsReady"
	case SharesCreated:
		return "SharesCreated"
	case SharesReceived:
		return "SharesReceived"
	case SecretShareReady:
		return "SecretShareReady"
	case GroupKeyReady:
		return "GroupKeyReady"
	default:
		return "Invalid"
	}
}
