package handler

import (
	"net/http"
	"time"

	"bookmydoc-api/internal/service"
	"bookmydoc-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=patient doctor"`
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Authenticate user
	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	// Return access token and user info in JSON
	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Refresh generates a new access token from refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	// Get refresh token from cookie
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	// Generate new access token
	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	// Get refresh token from cookie
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		// If no cookie, just clear it and return success
		clearRefreshCookie(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	// Revoke the refresh token
	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	clearRefreshCookie(c)

	utils.MessageResponse(c, "Logged out successfully")
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Register user
	response, err := h.authService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	// Return access token and user info in JSON
	utils.CreatedResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// GetDoctors returns the doctor directory for the booking flow
func (h *AuthHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.authService.ListDoctors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		"refresh_token",               // name
		token,                         // value
		int(7*24*time.Hour.Seconds()), // maxAge in seconds (7 days)
		"/",                           // path
		"",                            // domain (empty means current domain)
		false,                         // secure (set to true in production with HTTPS)
		true,                          // httpOnly
	)
}

func clearRefreshCookie(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
