package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCapacity = 17

type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Plate      string `json:"matricula"`
	Make       string `json:"marca"`
	Inspection string `json:"inspeccao"`
	Insurance  string `json:"seguro"`
	Photo      string `json:"foto"`
	Capacity   int    `json:"lotacao" gorm:"default:17"`

	// Authoritative driver<->vehicle link; nulled when the driver is deleted
	DriverID *uuid.UUID `gorm:"type:uuid;index" json:"motorista_id"`
	Driver   *Driver    `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"motorista,omitempty"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Capacity == 0 {
		v.Capacity = DefaultCapacity
	}
	return nil
}
