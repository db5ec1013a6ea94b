package repositories

import (
	"context"
	"testing"

	"github.com/hocinedev/dzshop/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_DecrementStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Abaya Dubai", Price: decimal.NewFromInt(4500), Stock: 5}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.DecrementStock(ctx, db, product.ID, 3))
	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	// 3 > 2 now: the conditional update matches nothing and stock is
	// left alone.
	err = repo.DecrementStock(ctx, db, product.ID, 3)
	require.ErrorIs(t, err, ErrInsufficientStock)
	got, err = repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	err = repo.DecrementStock(ctx, db, "missing-id", 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	err = repo.DecrementStock(ctx, db, product.ID, 0)
	require.Error(t, err)
}

func TestProductRepository_Update_PartialFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "Robes"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		Name:       "Robe Satin",
		Price:      decimal.NewFromInt(3500),
		Stock:      10,
		CategoryID: &category.ID,
	}
	require.NoError(t, repo.Create(ctx, product))

	updated, err := repo.Update(ctx, product.ID, map[string]any{
		"name":             "Robe Satin Longue",
		"price":            decimal.NewFromInt(3900),
		"shortDescription": "Nouvelle collection",
		"notAField":        "ignored",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Robe Satin Longue", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(3900)), "price = %s", updated.Price)
	assert.Equal(t, "Nouvelle collection", updated.ShortDescription)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, category.ID, *updated.CategoryID)
	assert.Equal(t, 10, updated.Stock)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	updated, err := repo.Update(context.Background(), "missing-id", map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProductRepository_GetAll_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Sac Cuir", "Abaya Dubai", "Hijab Soie"} {
		require.NoError(t, repo.Create(ctx, &models.Product{Name: name, Price: decimal.NewFromInt(1000)}))
	}

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Abaya Dubai", products[0].Name)
	assert.Equal(t, "Hijab Soie", products[1].Name)
	assert.Equal(t, "Sac Cuir", products[2].Name)
}

func TestProductRepository_GetByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	robes := &models.Category{Name: "Robes"}
	sacs := &models.Category{Name: "Sacs"}
	require.NoError(t, db.Create(robes).Error)
	require.NoError(t, db.Create(sacs).Error)

	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Robe A", Price: decimal.NewFromInt(1000), CategoryID: &robes.ID}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Robe B", Price: decimal.NewFromInt(1000), CategoryID: &robes.ID}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Sac A", Price: decimal.NewFromInt(1000), CategoryID: &sacs.ID}))

	products, err := repo.GetByCategory(ctx, robes.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, robes.ID, *p.CategoryID)
	}
}

func TestProductRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Robe A", Price: decimal.NewFromInt(1000)}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "deleted products are gone, not soft-hidden")
}

func TestProductRepository_JSONListColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &models.Product{
		Name:   "Robe A",
		Price:  decimal.NewFromInt(1000),
		Images: []string{"/img/1.jpg", "/img/2.jpg"},
		Colors: []string{"Noir"},
		Sizes:  []string{"M", "L"},
	}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/img/1.jpg", "/img/2.jpg"}, got.Images)
	assert.Equal(t, []string{"Noir"}, got.Colors)
	assert.Equal(t, []string{"M", "L"}, got.Sizes)
}
