package service

import (
	"fmt"
	"strings"
	"time"

	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/repository"
	"bookmydoc-api/pkg/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// DoctorInfo is a doctor directory entry for the booking flow
type DoctorInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	// Find user by email
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Compare password
	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	// Generate access token
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	// Generate refresh token
	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Hash and store refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	// Log login action
	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	// Hash the refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)

	// Find refresh token in database
	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	// Check if token is expired
	if time.Now().After(token.ExpiresAt) {
		return "", ErrInvalidCredentials
	}

	// Generate new access token
	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	// Hash the refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)

	// Revoke the token
	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Register creates a new user account. The role defaults to patient when
// empty; anything outside patient/doctor is rejected.
func (s *AuthService) Register(name, email, password, role string) (*LoginResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var fields []string
	if name == "" {
		fields = append(fields, "name is required")
	}
	if email == "" {
		fields = append(fields, "email is required")
	}
	if len(password) < 6 {
		fields = append(fields, "password must be at least 6 characters")
	}

	userRole := models.RolePatient
	if role != "" {
		parsed, ok := models.ParseRole(role)
		if !ok {
			fields = append(fields, "role must be patient or doctor")
		} else {
			userRole = parsed
		}
	}

	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindUserByEmail(email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	// Hash the password
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         userRole,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate access token
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	// Generate refresh token
	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Hash and store refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	// Log registration action
	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("User %s registered as %s", user.Email, user.Role))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// ListDoctors returns the doctor directory used by the booking flow
func (s *AuthService) ListDoctors() ([]DoctorInfo, error) {
	users, err := s.userRepo.FindUsersByRole(models.RoleDoctor)
	if err != nil {
		return nil, err
	}

	doctors := make([]DoctorInfo, len(users))
	for i, u := range users {
		doctors[i] = DoctorInfo{ID: u.ID, Name: u.DisplayName()}
	}
	return doctors, nil
}
