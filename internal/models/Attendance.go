package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance records that a student rode a vehicle on a given date.
type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uuid.UUID `gorm:"type:uuid;index;not null" json:"estudante_id"`
	Student   *Student  `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estudante,omitempty"`

	VehicleID uuid.UUID `gorm:"type:uuid;index;not null" json:"viatura_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"viatura,omitempty"`

	Date time.Time `gorm:"type:date" json:"data"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
