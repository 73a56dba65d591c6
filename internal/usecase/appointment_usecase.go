package usecase

import (
	"context"
	"strings"
	"time"

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

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	now             func() time.Time
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
}

// NewAppointmentUsecase takes now as the clock for the creation-time date check.
func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	now func() time.Time,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
) AppointmentUsecase {
	if now == nil {
		now = time.Now
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		now:             now,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment := &entity.Appointment{}
	if err := u.assign(tx, appointment, req, true); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		return nil, u.writeError(tx, "create", appointment, err)
	}

	response, err := u.reload(tx, appointment.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.reload(u.db.WithContext(ctx), id)
}

func (u *appointmentUsecase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	responses, err := converter.AppointmentsToResponses(appointments)
	if err != nil {
		u.log.Errorf("Failed to expand appointments: %+v", err)
		return nil, err
	}
	return responses, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.assign(tx, appointment, req, false); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		return nil, u.writeError(tx, "update", appointment, err)
	}

	response, err := u.reload(tx, appointment.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deleted, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrAppointmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// assign merges the supplied fields and validates the result. The future
// date rule only applies when creating.
func (u *appointmentUsecase) assign(tx *gorm.DB, appointment *entity.Appointment, req *dto.AppointmentRequest, creating bool) error {
	var c checks

	if req.AppointmentDate != nil {
		if strings.TrimSpace(*req.AppointmentDate) == "" {
			appointment.AppointmentDate = time.Time{}
		} else if date, ok := parseAppointmentDate(*req.AppointmentDate); ok {
			appointment.AppointmentDate = date
		} else {
			c.add("appointment_date", "Appointment date is invalid")
		}
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.PatientID != nil {
		appointment.PatientID = parseReference(*req.PatientID)
		appointment.Patient = nil
	}
	if req.DoctorID != nil {
		appointment.DoctorID = parseReference(*req.DoctorID)
		appointment.Doctor = nil
	}
	if req.DepartmentID != nil {
		appointment.DepartmentID = parseReference(*req.DepartmentID)
		appointment.Department = nil
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := c.rules(u.validate, appointment); err != nil {
		return err
	}

	if creating && !c.has("appointment_date") && !appointment.AppointmentDate.After(u.now()) {
		c.add("appointment_date", msgAppointmentDateInPast)
	}

	if err := u.references(tx, &c, appointment); err != nil {
		return err
	}

	return c.err()
}

func (u *appointmentUsecase) references(tx *gorm.DB, c *checks, appointment *entity.Appointment) error {
	references := []struct {
		field  string
		id     uuid.UUID
		exists func(*gorm.DB, uuid.UUID) (bool, error)
	}{
		{"patient_id", appointment.PatientID, u.patientRepo.ExistsByID},
		{"doctor_id", appointment.DoctorID, u.doctorRepo.ExistsByID},
		{"department_id", appointment.DepartmentID, u.departmentRepo.ExistsByID},
	}
	for _, ref := range references {
		exists := ref.exists
		if err := c.reference(ref.field, ref.id, func(id uuid.UUID) (bool, error) {
			return exists(tx, id)
		}); err != nil {
			u.log.Warnf("Failed to check %s: %+v", ref.field, err)
			return err
		}
	}
	return nil
}

// writeError turns a reference lost between validation and write into a
// validation error. Without a constraint name the references are checked again
// to find which one is gone.
func (u *appointmentUsecase) writeError(tx *gorm.DB, op string, appointment *entity.Appointment, err error) error {
	switch {
	case repositoryImpl.IsForeignKeyError(err, "patient"):
		return newValidationError("Patient must exist")
	case repositoryImpl.IsForeignKeyError(err, "doctor"):
		return newValidationError("Doctor must exist")
	case repositoryImpl.IsForeignKeyError(err, "department"):
		return newValidationError("Department must exist")
	case repositoryImpl.IsForeignKeyError(err, ""):
		var c checks
		if checkErr := u.references(tx, &c, appointment); checkErr == nil {
			if validationErr := c.err(); validationErr != nil {
				return validationErr
			}
		}
	}
	u.log.Warnf("Failed to %s appointment: %+v", op, err)
	return err
}

func (u *appointmentUsecase) reload(db *gorm.DB, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	response, err := converter.AppointmentToResponse(appointment)
	if err != nil {
		u.log.Errorf("Failed to expand appointment: %+v", err)
		return nil, err
	}
	return response, nil
}
