package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route is a static pickup/dropoff schedule, optionally served by a vehicle.
type Route struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ArrivalTime   string `json:"hora_chegada"`
	DepartureTime string `json:"hora_partida"`
	Description   string `json:"descricao"`

	VehicleID *uuid.UUID `gorm:"type:uuid;index" json:"viatura_id"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"viatura,omitempty"`
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
