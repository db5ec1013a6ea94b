package migrations

import (
	"github.com/hocinedev/dzshop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}, &models.Order{}, &models.OrderStatusHistory{})
}
