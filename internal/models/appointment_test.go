package models_test

import (
	"testing"

	"bookmydoc-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  models.AppointmentStatus
		ok    bool
	}{
		{"approved", models.StatusApproved, true},
		{"rejected", models.StatusRejected, true},
		{"pending", "", false},
		{"cancelled", "", false},
		{"", "", false},
		{"Approved", "", false},
	}

	for _, tt := range tests {
		got, ok := models.ParseDecision(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminal())
	assert.True(t, models.StatusApproved.IsTerminal())
	assert.True(t, models.StatusRejected.IsTerminal())
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, models.IsValidTimeSlot("09:00 AM"))
	assert.True(t, models.IsValidTimeSlot("05:00 PM"))
	assert.False(t, models.IsValidTimeSlot("09:15 AM"))
	assert.False(t, models.IsValidTimeSlot("midnight"))
	assert.False(t, models.IsValidTimeSlot(""))
}
