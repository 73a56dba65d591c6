package repository

import (
	"clinic-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByDepartmentID(db *gorm.DB, departmentID uuid.UUID) (int64, error)
	DeleteByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (int64, error)
	DeleteByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error)
	CountByPatientIDAndStatus(db *gorm.DB, patientID uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
