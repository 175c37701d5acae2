package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is the role-specific profile for users with nivel_acesso "motorista".
// Email, password and role live on the backing User row.
type Driver struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuario_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"usuario,omitempty"`

	License        string `json:"licenca"`
	CriminalRecord string `json:"registo_criminal"`
	Photo          string `json:"foto"`
	Contact        string `json:"contacto"` // exactly 9 digits
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
