package model

import "time"

// CredentialModel mirrors the 'credentials' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
//
// PlaintextPassword is nullable and only populated in demo mode; the unique
// constraint on it reproduces the original tutorial schema and must be dropped
// together with the column for production deployments.
type CredentialModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Username          string  `gorm:"type:varchar(255);unique;not null"`
	UsernameHash      string  `gorm:"type:varchar(255);not null"`
	PlaintextPassword *string `gorm:"type:varchar(255);unique"`
	PasswordHash      string  `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
