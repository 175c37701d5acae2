package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment binds a student to a vehicle. It is the single source of truth
// for seat occupancy: a student holds at most one row (unique index on
// StudentID) and a vehicle never holds more rows than its capacity. Rows are
// only ever created through assignment.Engine, never by direct insert.
type Assignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"estudante_id"`
	Student   *Student  `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estudante,omitempty"`

	VehicleID uuid.UUID `gorm:"type:uuid;index;not null" json:"viatura_id"`
	Vehicle   *Vehicle  `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"viatura,omitempty"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
