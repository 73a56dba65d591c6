package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor belongs to exactly one department.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name" validate:"notblank"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:idx_doctors_email;not null" json:"email" validate:"notblank,email"`
	Phone          string    `gorm:"type:varchar(50);not null" json:"phone" validate:"notblank"`
	Specialization string    `gorm:"type:varchar(255);not null" json:"specialization" validate:"notblank"`
	DepartmentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"department_id" validate:"required"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department   *Department   `gorm:"foreignKey:DepartmentID" json:"department,omitempty" validate:"-"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
