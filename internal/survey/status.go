package survey

// Status of a persisted graduate profile.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Approved and rejected never swap directly; a reversal passes back
// through pending so a reviewer always re-confirms the record.
var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPending},
	StatusRejected: {StatusPending},
}

// CanTransition reports whether from -> to is an allowed status edge.
func CanTransition(from, to Status) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
