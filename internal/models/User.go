package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent = "estudante"
	RoleDriver  = "motorista"
	RoleAdmin   = "administrador"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `json:"nome"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     string `json:"nivel_acesso"` // "estudante", "motorista", "administrador"

	// Role-specific profile, at most one of the two
	Student *Student `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estudante,omitempty"`
	Driver  *Driver  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"motorista,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidRole reports whether role is one of the three access levels.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleDriver, RoleAdmin:
		return true
	}
	return false
}
