package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               string              `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name             string              `gorm:"size:255;not null"`
	Price            decimal.Decimal     `gorm:"type:decimal(16,2);not null"`
	OldPrice         decimal.NullDecimal `gorm:"type:decimal(16,2)"`
	Stock            int                 `gorm:"not null;default:0"`
	ShortDescription string              `gorm:"size:500"`
	LongDescription  string              `gorm:"type:text"`
	Images           []string            `gorm:"serializer:json"`
	Colors           []string            `gorm:"serializer:json"`
	Sizes            []string            `gorm:"serializer:json"`
	CategoryID       *string             `gorm:"size:36;index"`
	Category         *Category           `gorm:"foreignKey:CategoryID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
