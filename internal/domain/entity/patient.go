package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient email is not unique; the seeder uses it as a natural key.
type Patient struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name" validate:"notblank"`
	Email     string     `gorm:"type:varchar(255);not null;index" json:"email" validate:"notblank"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Address   string     `gorm:"type:text" json:"address"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-" validate:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
