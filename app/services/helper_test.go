package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/hocinedev/dzshop/app/models/migrations"
	"github.com/hocinedev/dzshop/app/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
	checkout     *CheckoutService
	stats        *StatisticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would get its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))

	env := &testEnv{
		db:           db,
		productRepo:  repositories.NewProductRepository(db),
		categoryRepo: repositories.NewCategoryRepository(db),
		customerRepo: repositories.NewCustomerRepository(db),
		orderRepo:    repositories.NewOrderRepository(db),
	}
	env.checkout = NewCheckoutService(db, validator.New(), env.productRepo, env.customerRepo, env.orderRepo)
	env.stats = NewStatisticsService(env.orderRepo, env.categoryRepo, env.customerRepo)
	return env
}
