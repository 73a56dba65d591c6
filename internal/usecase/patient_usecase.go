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

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context) ([]dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{}
	if err := u.assign(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.assign(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete is refused while the patient still has a scheduled appointment.
// Completed and cancelled appointments are removed with the patient.
func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.patientRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}

	scheduled, err := u.appointmentRepo.CountByPatientIDAndStatus(tx, id, entity.AppointmentStatusScheduled)
	if err != nil {
		u.log.Warnf("Failed to count patient appointments: %+v", err)
		return err
	}
	if scheduled > 0 {
		return newValidationError(msgPatientHasScheduledVisit)
	}

	if _, err := u.appointmentRepo.DeleteByPatientID(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient appointments: %+v", err)
		return err
	}
	if _, err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) assign(patient *entity.Patient, req *dto.PatientRequest) error {
	var c checks

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.BirthDate != nil {
		birthDate, ok := parseBirthDate(*req.BirthDate)
		if ok {
			patient.BirthDate = birthDate
		} else {
			c.add("birth_date", "Birth date is invalid")
		}
	}

	if err := c.rules(u.validate, patient); err != nil {
		return err
	}
	return c.err()
}
