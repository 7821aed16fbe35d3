package keygen

import "fmt"

// Status is the outcome of one post-protocol check.
type Status uint8

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	default:
		return "Invalid"
	}
}

// CheckResult is one verifier finding. Checks never abort a session; they
// are terminal diagnostics for the operator.
type CheckResult struct {
	Name   string `cbor:"name"`
	Status Status `cbor:"status"`
	Detail string `cbor:"detail"`
}

// Verify runs the three independent post-protocol checks over the
// participant collection:
//
//   - every secret share nonzero (ERROR on violation);
//   - all secret shares pairwise distinct (WARNING on violation, since
//     distinctness is expected with high probability but not guaranteed);
//   - all group keys identical (ERROR on violation; this is the single
//     hard correctness requirement, and disagreement indicates a
//     broadcast-equivocation or arithmetic bug).
func Verify(participants []*Participant) []CheckResult {
	return []CheckResult{
		checkNonzeroShares(participants),
		checkDistinctShares(participants),
		checkGroupKeyAgreement(participants),
	}
}

func checkNonzeroShares(participants []*Participant) CheckResult {
	result := CheckResult{Name: "nonzero-shares", Status: StatusOK,
		Detail: "all nodes hold a nonzero secret share"}
	for _, p := range participants {
		if p.secretShare == nil || p.secretShare.EqZero() == 1 {
			result.Status = StatusError
			result.Detail = fmt.Sprintf("node %d holds a zero secret share", p.id)
			break
		}
	}
	return result
}

func checkDistinctShares(participants []*Participant) CheckResult {
	result := CheckResult{Name: "distinct-shares", Status: StatusOK,
		Detail: "all secret shares are pairwise distinct"}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.secretShare == nil {
			continue
		}
		key := p.secretShare.Big().Text(16)
		if seen[key] {
			result.Status = StatusWarning
			result.Detail = "some secret shares are identical"
			break
		}
		seen[key] = true
	}
	return result
}

func checkGroupKeyAgreement(participants []*Participant) CheckResult {
	result := CheckResult{Name: "group-key-agreement", Status: StatusOK,
		Detail: "all nodes derived the same group key"}
	if len(participants) == 0 {
		result.Status = StatusError
		result.Detail = "no participants to check"
		return result
	}
	for _, p := range participants {
		if p.groupKey == nil {
			result.Status = StatusError
			result.Detail = fmt.Sprintf("node %d has no group key", p.id)
			return result
		}
	}
	first := participants[0].groupKey
	for _, p := range participants[1:] {
		if p.groupKey.Eq(first) != 1 {
			result.Status = StatusError
			result.Detail = "group keys differ between nodes"
			break
		}
	}
	return result
}
