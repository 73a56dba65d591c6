package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department groups doctors and the appointments booked against it.
type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"notblank"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors      []Doctor      `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Appointments []Appointment `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
