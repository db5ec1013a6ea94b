package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is identified by phone number: the unique index on
// phone_number backs the checkout upsert, so one phone never maps to
// two customer rows.
type Customer struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"size:20;not null;uniqueIndex"`
	Wilaya      string `gorm:"size:100"`
	Commune     string `gorm:"size:100"`
	Address     string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
