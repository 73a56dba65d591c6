package repository

import (
	"testing"
	"time"

	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/testutil"

	"github.com/google/uuid"
)

func TestDoctorRepositoryPreloadsDepartment(t *testing.T) {
	db := testutil.NewDB(t)
	departments := NewDepartmentRepository()
	doctors := NewDoctorRepository()

	department := &entity.Department{Name: "Cardiology"}
	if err := departments.Create(db, department); err != nil {
		t.Fatalf("create department: %v", err)
	}
	doctor := &entity.Doctor{Name: "A", Email: "a@x.com", Phone: "1", Specialization: "Cardio", DepartmentID: department.ID}
	if err := doctors.Create(db, doctor); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	found, err := doctors.FindByID(db, doctor.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Department == nil || found.Department.Name != "Cardiology" {
		t.Errorf("expected preloaded department, got %+v", found.Department)
	}

	missing, err := doctors.FindByID(db, uuid.New())
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil) for unknown id, got %v, %v", missing, err)
	}
}

func TestDoctorRepositoryExistsByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	department := &entity.Department{Name: "Cardiology"}
	if err := NewDepartmentRepository().Create(db, department); err != nil {
		t.Fatalf("create department: %v", err)
	}
	doctors := NewDoctorRepository()
	doctor := &entity.Doctor{Name: "A", Email: "a@x.com", Phone: "1", Specialization: "Cardio", DepartmentID: department.ID}
	if err := doctors.Create(db, doctor); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	taken, err := doctors.ExistsByEmail(db, "a@x.com", uuid.Nil)
	if err != nil || !taken {
		t.Errorf("expected email taken, got %v (%v)", taken, err)
	}
	taken, err = doctors.ExistsByEmail(db, "a@x.com", doctor.ID)
	if err != nil || taken {
		t.Errorf("expected own email to be excluded, got %v (%v)", taken, err)
	}
}

func TestStoreRejectsBrokenReferences(t *testing.T) {
	db := testutil.NewDB(t)

	doctor := &entity.Doctor{Name: "A", Email: "a@x.com", Phone: "1", Specialization: "Cardio", DepartmentID: uuid.New()}
	err := NewDoctorRepository().Create(db, doctor)
	if !IsForeignKeyError(err, "") {
		t.Fatalf("expected foreign key error, got %v", err)
	}
	// sqlite does not report which constraint failed
	if IsForeignKeyError(err, "department") {
		t.Errorf("expected no constraint match without a constraint name")
	}
}

func TestStoreRejectsDuplicateUserEmail(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository()

	if err := users.Create(db, &entity.User{Email: "a@x.com", Password: "hash"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	err := users.Create(db, &entity.User{Email: "a@x.com", Password: "hash"})
	if !IsDuplicateKeyError(err, "email") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestAppointmentRepositoryCascadeHelpers(t *testing.T) {
	db := testutil.NewDB(t)
	department := &entity.Department{Name: "Cardiology"}
	if err := NewDepartmentRepository().Create(db, department); err != nil {
		t.Fatalf("create department: %v", err)
	}
	doctor := &entity.Doctor{Name: "A", Email: "a@x.com", Phone: "1", Specialization: "Cardio", DepartmentID: department.ID}
	if err := NewDoctorRepository().Create(db, doctor); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	patient := &entity.Patient{Name: "P", Email: "p@x.com"}
	if err := NewPatientRepository().Create(db, patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	appointments := NewAppointmentRepository()
	for _, status := range []entity.AppointmentStatus{entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted} {
		appointment := &entity.Appointment{
			AppointmentDate: time.Now().Add(time.Hour),
			Status:          status,
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			DepartmentID:    department.ID,
		}
		if err := appointments.Create(db, appointment); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	scheduled, err := appointments.CountByPatientIDAndStatus(db, patient.ID, entity.AppointmentStatusScheduled)
	if err != nil || scheduled != 1 {
		t.Errorf("expected 1 scheduled, got %d (%v)", scheduled, err)
	}

	if n, err := appointments.DeleteByDoctorIDs(db, nil); err != nil || n != 0 {
		t.Errorf("expected no-op for empty ids, got %d (%v)", n, err)
	}
	n, err := appointments.DeleteByDoctorIDs(db, []uuid.UUID{doctor.ID})
	if err != nil || n != 2 {
		t.Errorf("expected 2 deleted, got %d (%v)", n, err)
	}

	all, err := appointments.FindAll(db)
	if err != nil || len(all) != 0 {
		t.Errorf("expected empty list, got %v (%v)", all, err)
	}
}
