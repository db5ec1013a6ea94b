package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hocinedev/dzshop/app/models"
	"github.com/hocinedev/dzshop/app/repositories"
	"gorm.io/gorm"
)

var ErrValidation = errors.New("invalid order request")

// PlaceOrderRequest carries everything the storefront checkout form
// collects. The customer is identified by phone number; an existing
// customer with the same phone is reused instead of duplicated.
type PlaceOrderRequest struct {
	ProductID     string `validate:"required"`
	Quantity      int    `validate:"required,min=1"`
	CustomerName  string `validate:"required,min=2"`
	CustomerPhone string `validate:"required,min=6"`
	Wilaya        string `validate:"required"`
	Commune       string `validate:"required"`
	Address       string `validate:"required"`
	Notes         *string
}

type CheckoutService struct {
	db           *gorm.DB
	validate     *validator.Validate
	productRepo  repositories.ProductRepositoryImpl
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	validate *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	customerRepo repositories.CustomerRepository,
	orderRepo repositories.OrderRepository,
) *CheckoutService {
	return &CheckoutService{
		db:           db,
		validate:     validate,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// PlaceOrder runs the whole checkout as one transaction: upsert the
// customer by phone, decrement product stock through the conditional
// update, insert the order with the product price snapshotted, and
// write the initial PENDING history row. Insufficient stock surfaces as
// repositories.ErrInsufficientStock and leaves every table untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", req.ProductID, err)
	}
	if product == nil {
		return nil, repositories.ErrProductNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: rolling back checkout transaction: %v", r)
			tx.Rollback()
		}
	}()

	customer, err := s.customerRepo.Create(ctx, tx, &models.Customer{
		Name:        req.CustomerName,
		PhoneNumber: req.CustomerPhone,
		Wilaya:      req.Wilaya,
		Commune:     req.Commune,
		Address:     req.Address,
	})
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	if err := s.productRepo.DecrementStock(ctx, tx, product.ID, req.Quantity); err != nil {
		tx.Rollback()
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: product %q has %d in stock, requested %d",
				repositories.ErrInsufficientStock, product.Name, product.Stock, req.Quantity)
		}
		return nil, err
	}

	order := &models.Order{
		ProductID:     product.ID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.PhoneNumber,
		Date:          time.Now(),
		Status:        models.OrderStatusPending,
		Wilaya:        req.Wilaya,
		Commune:       req.Commune,
		Address:       req.Address,
		Quantity:      req.Quantity,
		Price:         product.Price,
		Notes:         req.Notes,
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.orderRepo.AppendStatusHistory(ctx, tx, order.ID, models.OrderStatusPending, nil); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record order status: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}
	return order, nil
}
