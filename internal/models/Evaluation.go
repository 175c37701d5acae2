package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evaluation is a 1-5 rating left by a student about a driver.
type Evaluation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uuid.UUID `gorm:"type:uuid;index;not null" json:"estudante_id"`
	Student   *Student  `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estudante,omitempty"`

	DriverID uuid.UUID `gorm:"type:uuid;index;not null" json:"motorista_id"`
	Driver   *Driver   `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"motorista,omitempty"`

	Rating  int    `json:"avaliacao"` // 1..5
	Comment string `json:"comentario"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
