package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel is the GORM-specific struct for the 'appointments' table.
type AppointmentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AppointmentDate time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(32);not null;default:'Scheduled'"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
