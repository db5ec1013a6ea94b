package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/hocinedev/dzshop/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes *string) (*models.Order, error)
	Cancel(ctx context.Context, id string) (*models.Order, error)
	AppendStatusHistory(ctx context.Context, tx *gorm.DB, orderID string, status models.OrderStatus, notes *string) error
	GetStatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", status).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus rejects transitions that are not edges of the order
// lifecycle and appends a history row together with the status write in
// one transaction.
func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes *string) (*models.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, status)
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, status)
	}

	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return r.AppendStatusHistory(ctx, tx, id, status, notes)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Cancel is the admin shorthand for the CANCELED transition; the same
// lifecycle rules apply, so shipped or delivered orders cannot be
// canceled.
func (r *gormOrderRepository) Cancel(ctx context.Context, id string) (*models.Order, error) {
	return r.UpdateStatus(ctx, id, models.OrderStatusCanceled, nil)
}

func (r *gormOrderRepository) AppendStatusHistory(ctx context.Context, tx *gorm.DB, orderID string, status models.OrderStatus, notes *string) error {
	history := models.OrderStatusHistory{
		OrderID: orderID,
		Status:  status,
		Notes:   notes,
	}
	return tx.WithContext(ctx).Create(&history).Error
}

func (r *gormOrderRepository) GetStatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	var history []models.OrderStatusHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
