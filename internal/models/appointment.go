package models

import "time"

// AppointmentStatus is the three-valued lifecycle field of an Appointment.
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusApproved AppointmentStatus = "approved"
	StatusRejected AppointmentStatus = "rejected"
)

// ParseDecision maps a raw status string to one of the two decision states.
// Only approved/rejected are valid targets; pending is creation-only.
func ParseDecision(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusApproved:
		return StatusApproved, true
	case StatusRejected:
		return StatusRejected, true
	default:
		return "", false
	}
}

// IsTerminal reports whether the status can no longer change.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Appointment represents the appointments table.
// PatientID and DoctorID are fixed at creation; status is the only field
// mutated afterwards, guarded by the version column.
type Appointment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Department  string            `gorm:"size:100;not null" json:"department"`
	DoctorName  string            `gorm:"size:100;not null" json:"doctor_name"`
	DoctorID    uint              `gorm:"not null;index" json:"doctor_id"`
	PatientName string            `gorm:"size:100;not null" json:"patient_name"`
	PatientID   uint              `gorm:"not null;index" json:"patient_id"`
	Date        string            `gorm:"size:20;not null" json:"date"`
	TimeSlot    string            `gorm:"size:20;not null" json:"time_slot"`
	Status      AppointmentStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	Version     uint              `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// TimeSlots is the fixed set of bookable half-hour slots.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "02:00 PM",
	"02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
	"04:30 PM", "05:00 PM",
}

// IsValidTimeSlot reports whether slot is one of the bookable slots.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
