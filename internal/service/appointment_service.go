package service

import (
	"fmt"
	"strings"

	"bookmydoc-api/internal/config"
	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/repository"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	userRepo        *repository.UserRepository
	auditRepo       *repository.AuditRepository
	doctorScope     config.DoctorScope
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
	doctorScope config.DoctorScope,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditRepo:       auditRepo,
		doctorScope:     doctorScope,
	}
}

// BookingInput is the patient-supplied part of a new appointment
type BookingInput struct {
	Department string
	DoctorName string
	DoctorID   uint
	Date       string
	TimeSlot   string
}

// Book creates a pending appointment for the calling patient. PatientID and
// PatientName always come from the caller's profile, never from the input.
func (s *AppointmentService) Book(input BookingInput, patientID uint) (*models.Appointment, error) {
	input.Department = strings.TrimSpace(input.Department)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)

	var fields []string
	if input.Department == "" {
		fields = append(fields, "department is required")
	}
	if input.DoctorName == "" {
		fields = append(fields, "doctor name is required")
	}
	if input.DoctorID == 0 {
		fields = append(fields, "doctor id is required")
	}
	if input.Date == "" {
		fields = append(fields, "date is required")
	}
	if input.TimeSlot == "" {
		fields = append(fields, "time slot is required")
	} else if !models.IsValidTimeSlot(input.TimeSlot) {
		fields = append(fields, "time slot is not a bookable slot")
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	// The assigned doctor must exist and actually be a doctor
	doctor, err := s.userRepo.FindUserByID(input.DoctorID)
	if err != nil || doctor.Role != models.RoleDoctor {
		return nil, NewValidationError("doctor id does not reference a doctor")
	}

	patient, err := s.userRepo.FindUserByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient profile: %w", err)
	}

	appointment := &models.Appointment{
		Department:  input.Department,
		DoctorName:  input.DoctorName,
		DoctorID:    input.DoctorID,
		PatientName: patient.DisplayName(),
		PatientID:   patientID,
		Date:        input.Date,
		TimeSlot:    input.TimeSlot,
		Status:      models.StatusPending,
		Version:     1,
	}

	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	userIDPtr := &patientID
	details := fmt.Sprintf("Booked appointment %d (%s, %s %s)", appointment.ID, appointment.Department, appointment.Date, appointment.TimeSlot)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "appointment_book", details)

	return appointment, nil
}

// List returns the appointments visible to the caller, newest first.
// Patients see their own bookings. Doctors see either the queue assigned to
// them or the full queue, depending on the configured scope.
func (s *AppointmentService) List(callerID uint, role models.Role) ([]models.Appointment, error) {
	switch role {
	case models.RolePatient:
		return s.appointmentRepo.GetAppointmentsByPatientID(callerID)
	case models.RoleDoctor:
		if s.doctorScope == config.ScopeAll {
			return s.appointmentRepo.GetAllAppointments()
		}
		return s.appointmentRepo.GetAppointmentsByDoctorID(callerID)
	default:
		return nil, ErrForbidden
	}
}

// Decide applies a doctor's approve/reject decision to an appointment.
// Re-applying the status an appointment already has is a no-op; flipping an
// already-resolved appointment to the other terminal state is a conflict.
func (s *AppointmentService) Decide(appointmentID uint, rawStatus string, doctorID uint) (*models.Appointment, error) {
	status, ok := models.ParseDecision(rawStatus)
	if !ok {
		return nil, NewValidationError("status must be approved or rejected")
	}

	appointment, err := s.appointmentRepo.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, ErrNotFound
	}

	if s.doctorScope == config.ScopeAssigned && appointment.DoctorID != doctorID {
		return nil, ErrForbidden
	}

	// Idempotent repeat of the same decision
	if appointment.Status == status {
		return appointment, nil
	}

	if appointment.Status.IsTerminal() {
		return nil, ErrConflict
	}

	updated, err := s.appointmentRepo.UpdateAppointmentStatus(appointmentID, status, appointment.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	if !updated {
		// Another decision landed between our read and write
		return nil, ErrConflict
	}

	appointment.Status = status
	appointment.Version++

	userIDPtr := &doctorID
	details := fmt.Sprintf("Appointment %d %s", appointmentID, status)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "appointment_decision", details)

	return appointment, nil
}
