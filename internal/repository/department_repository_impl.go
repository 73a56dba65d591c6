package repository

import (
	"errors"

	"clinic-records-api/internal/domain/entity"
	domainRepo "clinic-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Create(department).Error
}

func (r *departmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	departments := make([]entity.Department, 0)
	err := db.Order("created_at ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Department{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Save(department).Error
}

func (r *departmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Department{})
	return result.RowsAffected, result.Error
}
