package seeders

import (
	"context"
	"log"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"github.com/hocinedev/dzshop/app/db/fakers"
	"github.com/hocinedev/dzshop/app/models"
	"github.com/hocinedev/dzshop/app/repositories"
	"github.com/hocinedev/dzshop/app/services"
	"gorm.io/gorm"
)

// DBSeed fills the store with sample data. Orders are placed through
// the checkout service so stock decrements, customer dedup, and status
// history all run the same code paths production uses.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	checkout := services.NewCheckoutService(db, validator.New(), productRepo, customerRepo, orderRepo)

	var products []*models.Product
	for i := 0; i < 3; i++ {
		category := fakers.CategoryFaker()
		if err := categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		for j := 0; j < 3; j++ {
			product := fakers.ProductFaker(category)
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
			products = append(products, product)
		}
	}

	customers := make([]*models.Customer, 6)
	for i := range customers {
		customers[i] = fakers.CustomerFaker()
	}

	for i := 0; i < 15; i++ {
		product := products[rand.Intn(len(products))]
		customer := customers[rand.Intn(len(customers))]

		order, err := checkout.PlaceOrder(ctx, services.PlaceOrderRequest{
			ProductID:     product.ID,
			Quantity:      rand.Intn(2) + 1,
			CustomerName:  customer.Name,
			CustomerPhone: customer.PhoneNumber,
			Wilaya:        customer.Wilaya,
			Commune:       customer.Commune,
			Address:       customer.Address,
		})
		if err != nil {
			log.Printf("Skipping seeded order: %v", err)
			continue
		}

		// Walk some orders down the lifecycle so the dashboard has
		// every status represented.
		switch i % 4 {
		case 1:
			_, err = orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusConfirmed, nil)
		case 2:
			if _, err = orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusConfirmed, nil); err == nil {
				if _, err = orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusShipped, nil); err == nil {
					_, err = orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered, nil)
				}
			}
		case 3:
			_, err = orderRepo.Cancel(ctx, order.ID)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
