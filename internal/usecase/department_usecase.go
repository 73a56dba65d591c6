package usecase

import (
	"context"

	"clinic-records-api/internal/converter"
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	"clinic-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DepartmentUsecase interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type departmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	departmentRepo  repository.DepartmentRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	departmentRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DepartmentUsecase {
	return &departmentUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		departmentRepo:  departmentRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department := &entity.Department{}
	if err := u.assign(department, req); err != nil {
		return nil, err
	}

	if err := u.departmentRepo.Create(tx, department); err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all departments: %+v", err)
		return nil, err
	}

	return converter.DepartmentsToResponses(departments), nil
}

func (u *departmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	if err := u.assign(department, req); err != nil {
		return nil, err
	}

	if err := u.departmentRepo.Update(tx, department); err != nil {
		u.log.Warnf("Failed to update department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

// Delete removes the department together with its doctors, the appointments
// of those doctors and every appointment booked against the department.
func (u *departmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	doctorIDs, err := u.doctorRepo.FindIDsByDepartmentID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department doctors: %+v", err)
		return err
	}

	if _, err := u.appointmentRepo.DeleteByDepartmentID(tx, id); err != nil {
		u.log.Warnf("Failed to delete department appointments: %+v", err)
		return err
	}
	if _, err := u.appointmentRepo.DeleteByDoctorIDs(tx, doctorIDs); err != nil {
		u.log.Warnf("Failed to delete doctor appointments: %+v", err)
		return err
	}
	if _, err := u.doctorRepo.DeleteByDepartmentID(tx, id); err != nil {
		u.log.Warnf("Failed to delete department doctors: %+v", err)
		return err
	}
	if _, err := u.departmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete department: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithFields(logrus.Fields{
		"department_id": id,
		"doctors":       len(doctorIDs),
	}).Info("Department deleted")

	return nil
}

func (u *departmentUsecase) assign(department *entity.Department, req *dto.DepartmentRequest) error {
	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}

	var c checks
	if err := c.rules(u.validate, department); err != nil {
		return err
	}
	return c.err()
}
