package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a patient, a doctor and a department at a point in time.
// Overlapping appointments for the same doctor are allowed.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date" validate:"required"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status" validate:"notblank,oneof=scheduled completed cancelled"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id" validate:"required"`
	DepartmentID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"department_id" validate:"required"`
	Notes           string            `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    *Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty" validate:"-"`
	Doctor     *Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty" validate:"-"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty" validate:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsScheduled checks if appointment is still pending
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
