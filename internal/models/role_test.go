package models_test

import (
	"testing"

	"bookmydoc-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := models.ParseRole("patient")
	assert.True(t, ok)
	assert.Equal(t, models.RolePatient, role)

	role, ok = models.ParseRole("doctor")
	assert.True(t, ok)
	assert.Equal(t, models.RoleDoctor, role)

	for _, bad := range []string{"", "admin", "nurse", "Doctor"} {
		_, ok := models.ParseRole(bad)
		assert.False(t, ok, "role %q should be rejected", bad)
	}
}

func TestUserDisplayName(t *testing.T) {
	u := &models.User{Name: "Asha Rao", Email: "asha@example.com"}
	assert.Equal(t, "Asha Rao", u.DisplayName())

	u.Name = ""
	assert.Equal(t, "asha@example.com", u.DisplayName())

	u.Email = ""
	assert.Equal(t, "Patient", u.DisplayName())
}
