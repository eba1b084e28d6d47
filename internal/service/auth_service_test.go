package service_test

import (
	"testing"
	"time"

	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/repository"
	"bookmydoc-api/internal/service"
	"bookmydoc-api/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, sqlmock.Sqlmock) {
	t.Helper()
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	gdb, mock := newTestDB(t)
	svc := service.NewAuthService(
		repository.NewUserRepo(gdb),
		repository.NewAuditRepo(gdb),
	)
	return svc, mock
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("", "", "123", "nurse")

	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 4)
}

func TestRegisterDefaultsToPatient(t *testing.T) {
	svc, mock := newAuthService(t)

	// email free
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("asha@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `refresh_tokens`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `audit_logs`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	response, err := svc.Register("Asha Rao", "asha@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, response.User.Role)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Asha Rao", "asha@example.com", "hash", "patient", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("asha@example.com", 1).
		WillReturnRows(rows)

	_, err := svc.Register("Asha Rao", "asha@example.com", "secret123", "patient")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Asha Rao", "asha@example.com", hash, "patient", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("asha@example.com", 1).
		WillReturnRows(rows)

	_, err = svc.Login("asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListDoctors(t *testing.T) {
	svc, mock := newAuthService(t)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "Dr. Arjun Mehta", "arjun@clinic.example", "hash", "doctor", time.Now()).
		AddRow(3, "", "vivek@clinic.example", "hash", "doctor", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE role = \\? ORDER BY name ASC").
		WithArgs("doctor").
		WillReturnRows(rows)

	doctors, err := svc.ListDoctors()
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Dr. Arjun Mehta", doctors[0].Name)
	// directory entries fall back to email when the profile name is empty
	assert.Equal(t, "vivek@clinic.example", doctors[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
