package party

// ID identifies a participant within a single keygen session.
// IDs are assigned densely from 0 to N-1 and double as the index into
// per-session tables such as the broadcast commitment table.
type ID uint32

// EvaluationPoint is the point at which other participants evaluate their
// polynomial for this party. Points are 1-indexed so that the constant
// term f(0) is never handed out as a share.
func (id ID) EvaluationPoint() uint64 {
	return uint64(id) + 1
}

// IDSlice is an ordered set of participant IDs.
type IDSlice []ID

// NewIDSlice returns the IDs 0 through n-1 in order.
func NewIDSlice(n int) IDSlice {
	ids := make(IDSlice, n)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Contains reports whether id is a member of the slice.
func (ids IDSlice) Contains(id ID) bool {
	for _, other := range ids {
		if other == id {
			return true
		}
	}
	return false
}
