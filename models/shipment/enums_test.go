package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range GetAllStatuses() {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}
	assert.False(t, Status("shipped").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusBooked, StatusInTransit, true},
		{StatusBooked, StatusDelivered, true},
		{StatusInTransit, StatusDelivered, true},
		// Same-rank writes stay allowed for corrections.
		{StatusBooked, StatusBooked, true},
		{StatusDelivered, StatusDelivered, true},
		// Regressions are rejected.
		{StatusInTransit, StatusBooked, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusDelivered, StatusBooked, false},
		// Unknown targets are rejected.
		{StatusBooked, Status("lost"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s to %s", tt.from, tt.to)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusBooked.IsTerminal())
	assert.False(t, StatusInTransit.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
}
