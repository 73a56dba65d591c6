// Package seeder loads demo records. Every step is keyed by a natural key so
// running it again leaves existing rows alone.
package seeder

import (
	"context"
	"fmt"
	"time"

	"clinic-records-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Seeder struct {
	db       *gorm.DB
	log      *logrus.Logger
	now      func() time.Time
	hashCost int
}

func New(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{
		db:       db,
		log:      log,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

type departmentSeed struct {
	name        string
	description string
}

type doctorSeed struct {
	email          string
	name           string
	phone          string
	specialization string
	department     string
}

type patientSeed struct {
	email     string
	name      string
	phone     string
	birthDate string
	address   string
}

type appointmentSeed struct {
	patient string
	doctor  string
	inDays  int
	notes   string
}

type userSeed struct {
	email    string
	password string
}

var departmentSeeds = []departmentSeed{
	{"Cardiology", "Diagnosis and treatment of heart and circulatory disease"},
	{"Neurology", "Disorders of the brain and nervous system"},
	{"Orthopedics", "Bones, joints and the musculoskeletal system"},
	{"General Surgery", "General surgical procedures and operations"},
	{"Internal Medicine", "Diagnosis and treatment of internal disease"},
}

var patientSeeds = []patientSeed{
	{"john.miller@example.com", "John Miller", "555-0101", "1985-03-15", "12 Oak Street"},
	{"sara.jones@example.com", "Sara Jones", "555-0102", "1990-07-22", "48 Pine Avenue"},
	{"omar.haddad@example.com", "Omar Haddad", "555-0103", "1978-11-08", "3 Harbor Road"},
	{"lena.fischer@example.com", "Lena Fischer", "555-0104", "1995-05-30", "77 Hill Lane"},
	{"raj.patel@example.com", "Raj Patel", "555-0105", "1982-09-12", "9 River View"},
}

var doctorSeeds = []doctorSeed{
	{"dr.owens@example.com", "Dr. Helen Owens", "555-0201", "Cardiologist", "Cardiology"},
	{"dr.nakamura@example.com", "Dr. Ken Nakamura", "555-0202", "Neurologist", "Neurology"},
	{"dr.silva@example.com", "Dr. Ana Silva", "555-0203", "Orthopedic Surgeon", "Orthopedics"},
	{"dr.brooks@example.com", "Dr. Mark Brooks", "555-0204", "General Surgeon", "General Surgery"},
	{"dr.khan@example.com", "Dr. Aisha Khan", "555-0205", "Internist", "Internal Medicine"},
	{"dr.lindqvist@example.com", "Dr. Erik Lindqvist", "555-0206", "Cardiologist", "Cardiology"},
}

var appointmentSeeds = []appointmentSeed{
	{"john.miller@example.com", "dr.owens@example.com", 3, "ECG and heart check"},
	{"sara.jones@example.com", "dr.nakamura@example.com", 5, "Recurring headaches"},
	{"omar.haddad@example.com", "dr.silva@example.com", 7, "Lower back pain"},
	{"lena.fischer@example.com", "dr.brooks@example.com", 10, "Post-operative follow-up"},
	{"raj.patel@example.com", "dr.khan@example.com", 12, "General checkup"},
	{"john.miller@example.com", "dr.lindqvist@example.com", 15, "Second opinion"},
}

var userSeeds = []userSeed{
	{"admin@clinic.test", "admin123"},
	{"staff@clinic.test", "staff123"},
}

// Run seeds everything in one transaction. Appointments are only created
// when the table is empty; users have their demo password reset.
func (s *Seeder) Run(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		departments, err := s.seedDepartments(tx)
		if err != nil {
			return err
		}
		patients, err := s.seedPatients(tx)
		if err != nil {
			return err
		}
		doctors, err := s.seedDoctors(tx, departments)
		if err != nil {
			return err
		}
		if err := s.seedAppointments(tx, patients, doctors); err != nil {
			return err
		}
		return s.seedUsers(tx)
	})
}

func (s *Seeder) seedDepartments(tx *gorm.DB) (map[string]*entity.Department, error) {
	departments := make(map[string]*entity.Department, len(departmentSeeds))
	for _, seed := range departmentSeeds {
		department := &entity.Department{}
		err := tx.Where(entity.Department{Name: seed.name}).
			Attrs(entity.Department{Description: seed.description}).
			FirstOrCreate(department).Error
		if err != nil {
			return nil, fmt.Errorf("seed department %q: %w", seed.name, err)
		}
		departments[seed.name] = department
	}
	s.log.WithField("count", len(departments)).Info("Departments seeded")
	return departments, nil
}

func (s *Seeder) seedPatients(tx *gorm.DB) (map[string]*entity.Patient, error) {
	patients := make(map[string]*entity.Patient, len(patientSeeds))
	for _, seed := range patientSeeds {
		birthDate, err := time.Parse("2006-01-02", seed.birthDate)
		if err != nil {
			return nil, fmt.Errorf("seed patient %q: %w", seed.email, err)
		}

		patient := &entity.Patient{}
		err = tx.Where(entity.Patient{Email: seed.email}).
			Attrs(entity.Patient{Name: seed.name, Phone: seed.phone, BirthDate: &birthDate, Address: seed.address}).
			FirstOrCreate(patient).Error
		if err != nil {
			return nil, fmt.Errorf("seed patient %q: %w", seed.email, err)
		}
		patients[seed.email] = patient
	}
	s.log.WithField("count", len(patients)).Info("Patients seeded")
	return patients, nil
}

func (s *Seeder) seedDoctors(tx *gorm.DB, departments map[string]*entity.Department) (map[string]*entity.Doctor, error) {
	doctors := make(map[string]*entity.Doctor, len(doctorSeeds))
	for _, seed := range doctorSeeds {
		department, ok := departments[seed.department]
		if !ok {
			return nil, fmt.Errorf("seed doctor %q: unknown department %q", seed.email, seed.department)
		}

		doctor := &entity.Doctor{}
		err := tx.Where(entity.Doctor{Email: seed.email}).
			Attrs(entity.Doctor{
				Name:           seed.name,
				Phone:          seed.phone,
				Specialization: seed.specialization,
				DepartmentID:   department.ID,
			}).
			FirstOrCreate(doctor).Error
		if err != nil {
			return nil, fmt.Errorf("seed doctor %q: %w", seed.email, err)
		}
		doctors[seed.email] = doctor
	}
	s.log.WithField("count", len(doctors)).Info("Doctors seeded")
	return doctors, nil
}

func (s *Seeder) seedAppointments(tx *gorm.DB, patients map[string]*entity.Patient, doctors map[string]*entity.Doctor) error {
	var count int64
	if err := tx.Model(&entity.Appointment{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count appointments: %w", err)
	}
	if count > 0 {
		s.log.WithField("count", count).Info("Appointments already present, skipping")
		return nil
	}

	now := s.now().UTC()
	for _, seed := range appointmentSeeds {
		patient, doctor := patients[seed.patient], doctors[seed.doctor]
		if patient == nil || doctor == nil {
			return fmt.Errorf("seed appointment: unknown patient %q or doctor %q", seed.patient, seed.doctor)
		}

		appointment := &entity.Appointment{
			AppointmentDate: now.AddDate(0, 0, seed.inDays),
			Status:          entity.AppointmentStatusScheduled,
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			DepartmentID:    doctor.DepartmentID,
			Notes:           seed.notes,
		}
		if err := tx.Create(appointment).Error; err != nil {
			return fmt.Errorf("seed appointment: %w", err)
		}
	}
	s.log.WithField("count", len(appointmentSeeds)).Info("Appointments seeded")
	return nil
}

func (s *Seeder) seedUsers(tx *gorm.DB) error {
	for _, seed := range userSeeds {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.password), s.hashCost)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", seed.email, err)
		}

		user := &entity.User{}
		err = tx.Where(entity.User{Email: seed.email}).
			Assign(entity.User{Password: string(hashedPassword)}).
			FirstOrCreate(user).Error
		if err != nil {
			return fmt.Errorf("seed user %q: %w", seed.email, err)
		}
	}
	s.log.WithField("count", len(userSeeds)).Info("Users seeded")
	return nil
}
