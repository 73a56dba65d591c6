package repository

import (
	"clinic-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
	// ExistsByEmail ignores the doctor with excludeID so updates can keep their own email.
	ExistsByEmail(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error)
	FindIDsByDepartmentID(db *gorm.DB, departmentID uuid.UUID) ([]uuid.UUID, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByDepartmentID(db *gorm.DB, departmentID uuid.UUID) (int64, error)
}
