// Package model holds the GORM persistence structs. They are exported so the GORM Gen tool can read them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name;type:varchar(100);not null"`
	Avatar       string    `gorm:"type:text;not null"`
	CoverImage   string    `gorm:"type:text;not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	RefreshToken *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// IdentitySummaryModel is the column subset used for listings.
type IdentitySummaryModel struct {
	ID       uuid.UUID
	Username string
	FullName string
	Avatar   string
}
