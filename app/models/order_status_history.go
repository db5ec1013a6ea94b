package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatusHistory records one row per accepted status transition,
// including the initial PENDING entry written at checkout.
type OrderStatusHistory struct {
	ID        string      `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string      `gorm:"size:36;not null;index"`
	Status    OrderStatus `gorm:"type:varchar(20);not null"`
	Notes     *string     `gorm:"type:text"`
	CreatedAt time.Time
}

func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}
