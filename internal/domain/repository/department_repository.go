package repository

import (
	"clinic-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error)
	FindAll(db *gorm.DB) ([]entity.Department, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, department *entity.Department) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
