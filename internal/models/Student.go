package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is the role-specific profile for users with nivel_acesso "estudante".
type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuario_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"usuario,omitempty"`

	Age             int    `json:"idade"`
	GuardianContact string `json:"contacto_responsavel"` // exactly 9 digits
	Grade           string `json:"classe"`
	Section         string `json:"turma"`
	Photo           string `json:"foto"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
