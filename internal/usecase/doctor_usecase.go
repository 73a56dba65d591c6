package usecase

import (
	"context"

	"clinic-records-api/internal/converter"
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	repositoryImpl "clinic-records-api/internal/repository"
	"clinic-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context) ([]dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{}
	if err := u.assign(tx, doctor, req); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		return nil, u.writeError("create", err)
	}

	response, err := u.reload(tx, doctor.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	return u.reload(u.db.WithContext(ctx), id)
}

func (u *doctorUsecase) List(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses, err := converter.DoctorsToResponses(doctors)
	if err != nil {
		u.log.Errorf("Failed to expand doctors: %+v", err)
		return nil, err
	}
	return responses, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := u.assign(tx, doctor, req); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		return nil, u.writeError("update", err)
	}

	response, err := u.reload(tx, doctor.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// Delete removes the doctor and its appointments. The department is kept.
func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.doctorRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if !exists {
		return ErrDoctorNotFound
	}

	if _, err := u.appointmentRepo.DeleteByDoctorIDs(tx, []uuid.UUID{id}); err != nil {
		u.log.Warnf("Failed to delete doctor appointments: %+v", err)
		return err
	}
	if _, err := u.doctorRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) assign(tx *gorm.DB, doctor *entity.Doctor, req *dto.DoctorRequest) error {
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.DepartmentID != nil {
		doctor.DepartmentID = parseReference(*req.DepartmentID)
		doctor.Department = nil
	}

	var c checks
	if err := c.rules(u.validate, doctor); err != nil {
		return err
	}

	if doctor.Email != "" && !c.has("email") {
		taken, err := u.doctorRepo.ExistsByEmail(tx, doctor.Email, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to check doctor email: %+v", err)
			return err
		}
		if taken {
			c.add("email", msgEmailTaken)
		}
	}

	if err := c.reference("department_id", doctor.DepartmentID, func(id uuid.UUID) (bool, error) {
		return u.departmentRepo.ExistsByID(tx, id)
	}); err != nil {
		u.log.Warnf("Failed to check department: %+v", err)
		return err
	}

	return c.err()
}

// writeError maps constraint violations that slipped past validation, e.g. a
// concurrent insert of the same email, onto validation errors.
func (u *doctorUsecase) writeError(op string, err error) error {
	switch {
	// department_id is the only reference a doctor has
	case repositoryImpl.IsForeignKeyError(err, ""):
		return newValidationError("Department must exist")
	case repositoryImpl.IsDuplicateKeyError(err, "email"):
		return newValidationError(msgEmailTaken)
	}
	u.log.Warnf("Failed to %s doctor: %+v", op, err)
	return err
}

func (u *doctorUsecase) reload(db *gorm.DB, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	response, err := converter.DoctorToResponse(doctor)
	if err != nil {
		u.log.Errorf("Failed to expand doctor: %+v", err)
		return nil, err
	}
	return response, nil
}
