package model

import (
	"time"

	"github.com/google/uuid"
)

// AdvertisementModel mirrors the 'advertisements' table. Start and end dates are calendar days.
type AdvertisementModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	TargetURL   string    `gorm:"type:varchar(500)"`
	Status      string    `gorm:"type:varchar(10);not null;default:draft;index"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null;check:end_date >= start_date"`
	Budget      float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Spent       float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Slots []AdvertisementSlotModel `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementModel) TableName() string {
	return "advertisements"
}

// AdvertisementSlotModel mirrors the 'advertisement_slots' table.
type AdvertisementSlotModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdvertisementID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SlotName           string    `gorm:"type:varchar(100);not null"`
	PageLocation       string    `gorm:"type:varchar(100);not null;index"`
	Dimensions         string    `gorm:"type:varchar(20)"`
	PricePerImpression float64   `gorm:"type:numeric(12,4);not null;default:0"`
	PricePerClick      float64   `gorm:"type:numeric(12,4);not null;default:0"`
	CreatedAt          time.Time

	Advertisement *AdvertisementModel `gorm:"foreignKey:AdvertisementID"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementSlotModel) TableName() string {
	return "advertisement_slots"
}
