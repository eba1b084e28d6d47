package repository_test

import (
	"testing"
	"time"

	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "created_at"}
}

func TestFindUserByEmail(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := repository.NewUserRepo(gdb)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Asha Rao", "asha@example.com", "hash", "patient", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("asha@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, models.RolePatient, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmailNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := repository.NewUserRepo(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByEmail("nobody@example.com")
	assert.EqualError(t, err, "user not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUsersByRole(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := repository.NewUserRepo(gdb)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "Dr. Arjun Mehta", "arjun@clinic.example", "hash", "doctor", time.Now()).
		AddRow(3, "Dr. Vivek Menon", "vivek@clinic.example", "hash", "doctor", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE role = \\? ORDER BY name ASC").
		WithArgs("doctor").
		WillReturnRows(rows)

	doctors, err := repo.FindUsersByRole(models.RoleDoctor)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	for _, d := range doctors {
		assert.Equal(t, models.RoleDoctor, d.Role)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStaleRefreshTokens(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := repository.NewUserRepo(gdb)

	mock.ExpectExec("DELETE FROM `refresh_tokens` WHERE expires_at < \\? OR revoked = \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteStaleRefreshTokens(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
