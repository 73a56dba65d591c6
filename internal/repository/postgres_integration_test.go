package repository

import (
	"os"
	"testing"

	"clinic-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openPostgres connects to DATABASE_URL, read from the environment or a
// .env file at the repository root. The test is skipped when it is unset.
func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	_ = godotenv.Load("../../.env")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping postgres integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := db.AutoMigrate(entity.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostgresConstraintErrors(t *testing.T) {
	db := openPostgres(t)

	tx := db.Begin()
	defer tx.Rollback()

	department := &entity.Department{Name: "Cardiology"}
	if err := NewDepartmentRepository().Create(tx, department); err != nil {
		t.Fatalf("create department: %v", err)
	}

	doctors := NewDoctorRepository()
	email := uuid.NewString() + "@x.com"
	if err := doctors.Create(tx, &entity.Doctor{Name: "A", Email: email, Phone: "1", Specialization: "Cardio", DepartmentID: department.ID}); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	tx.SavePoint("duplicate")
	err := doctors.Create(tx, &entity.Doctor{Name: "B", Email: email, Phone: "2", Specialization: "Cardio", DepartmentID: department.ID})
	if !IsDuplicateKeyError(err, "email") {
		t.Errorf("expected unique violation on email, got %v", err)
	}
	tx.RollbackTo("duplicate")

	tx.SavePoint("reference")
	err = doctors.Create(tx, &entity.Doctor{Name: "C", Email: uuid.NewString() + "@x.com", Phone: "3", Specialization: "Cardio", DepartmentID: uuid.New()})
	if !IsForeignKeyError(err, "department") {
		t.Errorf("expected foreign key violation on department, got %v", err)
	}
	tx.RollbackTo("reference")
}
