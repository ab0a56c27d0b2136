package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the only place password material lives. The employee
// document references it by username; responses never carry the hash.
type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"not null;index"`
	Username     string    `gorm:"uniqueIndex:uq_credential_username;not null"`
	PasswordHash string    `gorm:"not null"`
	RoleAccess   string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Credential) TableName() string { return "credentials" }
