package repository

import (
	"errors"

	"bookmydoc-api/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateAppointment creates a new appointment record
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// GetAppointmentByID retrieves an appointment by ID
func (r *AppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, err
	}
	return &appointment, nil
}

// GetAppointmentsByPatientID retrieves a patient's appointments, newest first
func (r *AppointmentRepository) GetAppointmentsByPatientID(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointmentsByDoctorID retrieves appointments assigned to a doctor, newest first
func (r *AppointmentRepository) GetAppointmentsByDoctorID(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetAllAppointments retrieves every appointment, newest first
func (r *AppointmentRepository) GetAllAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Order("created_at DESC").Find(&appointments).Error
	return appointments, err
}

// UpdateAppointmentStatus sets the status of an appointment, guarded by the
// version column. Returns false when the version no longer matches, which
// means another writer got there first.
func (r *AppointmentRepository) UpdateAppointmentStatus(id uint, status models.AppointmentStatus, expectedVersion uint) (bool, error) {
	result := r.db.Model(&models.Appointment{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"status":  status,
			"version": expectedVersion + 1,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
