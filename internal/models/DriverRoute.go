package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverRoute links a driver to a route they serve (many-to-many).
type DriverRoute struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DriverID uuid.UUID `gorm:"type:uuid;index;not null" json:"motorista_id"`
	Driver   *Driver   `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"motorista,omitempty"`

	RouteID uuid.UUID `gorm:"type:uuid;index;not null" json:"rota_id"`
	Route   *Route    `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rota,omitempty"`
}

func (dr *DriverRoute) BeforeCreate(tx *gorm.DB) error {
	if dr.ID == uuid.Nil {
		dr.ID = uuid.New()
	}
	return nil
}
