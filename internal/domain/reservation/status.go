package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

type FeeStatus string

const (
	FeeUnpaid FeeStatus = "unpaid"
	FeePaid   FeeStatus = "paid"
)

func InitialStatus() Status {
	return StatusPending
}

func InitialFeeStatus() FeeStatus {
	return FeeUnpaid
}

// CanTransition guards the forward-only status flow. No endpoint mutates
// reservation status yet; the guard keeps the rule in one place for when
// one does.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusOngoing
	case StatusOngoing:
		return to == StatusCompleted
	default:
		return false
	}
}
