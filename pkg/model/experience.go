package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Experience is a professional experience entry, listed most recent first.
type Experience struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Position    string         `json:"position"`
	Company     string         `json:"company"`
	Description string         `json:"description"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Current     bool           `json:"current"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Location    string         `json:"location,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (e Experience) TableName() string {
	return "experiences"
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
