package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CommerceModel is the GORM-specific struct for the 'commerces' table.
// The geography column 'location' is generated from latitude and longitude by the database.
type CommerceModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Address      string         `gorm:"type:text"`
	Phone        string         `gorm:"type:varchar(50)"`
	OpeningHours string         `gorm:"type:text"`
	ImageURL     string         `gorm:"type:text"`
	Latitude     float64        `gorm:"type:double precision;not null"`
	Longitude    float64        `gorm:"type:double precision;not null"`
	Categories   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsApproved   bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CommerceModel) TableName() string {
	return "commerces"
}
