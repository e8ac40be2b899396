package shipment

// Status is the shipment lifecycle state.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusInTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the status ends the lifecycle and triggers
// archival.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// rank orders statuses along the lifecycle. Unknown statuses rank below
// everything so they never pass the transition check.
func (s Status) rank() int {
	switch s {
	case StatusBooked:
		return 1
	case StatusInTransit:
		return 2
	case StatusDelivered:
		return 3
	default:
		return 0
	}
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle
// monotonic. Re-asserting the current status is allowed (slot or employee
// corrections), regressing is not.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	return next.rank() >= s.rank()
}

// GetAllStatuses returns every valid shipment status in lifecycle order.
func GetAllStatuses() []Status {
	return []Status{StatusBooked, StatusInTransit, StatusDelivered}
}
