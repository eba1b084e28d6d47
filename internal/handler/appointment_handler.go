package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/service"
	"bookmydoc-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type CreateAppointmentRequest struct {
	Department string `json:"department" binding:"required"`
	DoctorName string `json:"doctor_name" binding:"required"`
	DoctorID   uint   `json:"doctor_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	TimeSlot   string `json:"time_slot" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateAppointment books a new appointment for the calling patient
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	appointment, err := h.appointmentService.Book(service.BookingInput{
		Department: req.Department,
		DoctorName: req.DoctorName,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
	}, userID.(uint))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appointment,
	})
}

// GetAppointments lists the appointments visible to the caller
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	userID, _ := c.Get("userID")
	rawRole, _ := c.Get("role")

	role, ok := models.ParseRole(rawRole.(string))
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	appointments, err := h.appointmentService.List(userID.(uint), role)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// UpdateAppointmentStatus applies a doctor's approve/reject decision
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	appointment, err := h.appointmentService.Decide(uint(id), req.Status, userID.(uint))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     fmt.Sprintf("Appointment %s successfully", appointment.Status),
		"appointment": appointment,
	})
}
