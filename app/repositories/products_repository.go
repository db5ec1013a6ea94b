package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/hocinedev/dzshop/app/mappers"
	"github.com/hocinedev/dzshop/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, tx *gorm.DB, id string, quantity int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update applies a partial update keyed by application field names.
// Unknown fields are dropped by the mapper; id and created_at are never
// overwritten.
func (r *productRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	cols := mappers.ProductSchema.ToStore(fields)
	delete(cols, "id")
	delete(cols, "created_at")
	if len(cols) == 0 {
		return product, nil
	}
	cols["updated_at"] = time.Now()

	err = r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(cols).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// DecrementStock performs a single conditional update: the stock column
// only changes when it still covers the requested quantity, so two
// concurrent decrements can never oversubscribe inventory.
func (r *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, id string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("decrement quantity must be positive, got %d", quantity)
	}

	res := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}
