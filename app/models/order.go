package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// statusTransitions is the legal edge set of the order lifecycle.
// DELIVERED and CANCELED are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCanceled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCanceled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a single-product order. Price is the product price at the
// time the order was placed; later product price edits never touch it.
// Customer name/phone and the delivery address are denormalized copies.
type Order struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID     string          `gorm:"size:36;not null;index"`
	Product       *Product        `gorm:"foreignKey:ProductID"`
	CustomerID    string          `gorm:"size:36;not null;index"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID"`
	CustomerName  string          `gorm:"size:255;not null"`
	CustomerPhone string          `gorm:"size:20;not null"`
	Date          time.Time       `gorm:"not null;index"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Wilaya        string          `gorm:"size:100"`
	Commune       string          `gorm:"size:100"`
	Address       string          `gorm:"size:500"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Notes         *string         `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
