package repository

import (
	"errors"

	"clinic-records-api/internal/domain/entity"
	domainRepo "clinic-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

// FindByID loads the appointment with its patient, doctor and department.
// The doctor's own department is not preloaded.
func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Preload("Department").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	appointments := make([]entity.Appointment, 0)
	err := db.Preload("Patient").Preload("Doctor").Preload("Department").
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByDepartmentID(db *gorm.DB, departmentID uuid.UUID) (int64, error) {
	result := db.Where("department_id = ?", departmentID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (int64, error) {
	if len(doctorIDs) == 0 {
		return 0, nil
	}
	result := db.Where("doctor_id IN ?", doctorIDs).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	result := db.Where("patient_id = ?", patientID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByPatientIDAndStatus(db *gorm.DB, patientID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND status = ?", patientID, status).
		Count(&count).Error
	return count, err
}

// orderAppointments sorts appointments preloaded under a doctor or patient.
func orderAppointments(db *gorm.DB) *gorm.DB {
	return db.Order("appointment_date ASC")
}
