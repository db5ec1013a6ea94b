package repositories

import (
	"context"
	"time"

	"github.com/hocinedev/dzshop/app/mappers"
	"github.com/hocinedev/dzshop/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Create(ctx context.Context, db *gorm.DB, customer *models.Customer) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create upserts on the phone_number unique index: creating a customer
// whose phone already exists refreshes the contact fields of the
// existing row and returns it, keeping the original identifier. The
// conflict handling lives in the store, so concurrent creates with the
// same new phone number cannot race into duplicate rows.
func (r *customerRepository) Create(ctx context.Context, db *gorm.DB, customer *models.Customer) (*models.Customer, error) {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "wilaya", "commune", "address", "updated_at"}),
	}).Create(customer).Error
	if err != nil {
		return nil, err
	}

	var saved models.Customer
	err = db.WithContext(ctx).First(&saved, "phone_number = ?", customer.PhoneNumber).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *customerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).Order("name").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "phone_number = ?", phoneNumber).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Customer, error) {
	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}

	cols := mappers.CustomerSchema.ToStore(fields)
	delete(cols, "id")
	delete(cols, "created_at")
	if len(cols) == 0 {
		return customer, nil
	}
	cols["updated_at"] = time.Now()

	err = r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(cols).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
