package services

import (
	"context"
	"sort"
	"time"

	"github.com/hocinedev/dzshop/app/models"
	"github.com/hocinedev/dzshop/app/repositories"
	"github.com/shopspring/decimal"
)

type BestSellingProduct struct {
	ProductID string
	Name      string
	Count     int
	Revenue   decimal.Decimal
}

type BestCustomer struct {
	CustomerID string
	Name       string
	Orders     int
	Revenue    decimal.Decimal
}

// MonthRevenue is one bucket of the monthly revenue series. Buckets are
// keyed by calendar year and month so December and January of adjacent
// years never collapse into one bar.
type MonthRevenue struct {
	Key     string // "2006-01", sortable
	Label   string // "Jan 2006", display
	Revenue decimal.Decimal
}

type ChartPoint struct {
	Name  string
	Value int
}

// Statistics is the derived snapshot the admin dashboard consumes.
type Statistics struct {
	TotalOrders               int
	ConfirmedOrders           int
	DeliveredOrders           int
	TotalRevenue              decimal.Decimal
	DeliveredRevenue          decimal.Decimal
	OrdersByProduct           map[string]int
	OrdersByCategory          map[string]int
	AverageRevenuePerCustomer decimal.Decimal
	BestSellingProducts       []BestSellingProduct
	BestCustomers             []BestCustomer
	MonthlyRevenue            []MonthRevenue
	OrderStatusData           []ChartPoint
	OrdersByCategoryData      []ChartPoint
}

type CustomerOrderLine struct {
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Date      time.Time
	Status    models.OrderStatus
}

// CustomerStatistics is the per-customer view shown on the admin
// customer detail page.
type CustomerStatistics struct {
	TotalOrders int
	TotalSpent  decimal.Decimal
	Orders      []CustomerOrderLine
}

type StatisticsService struct {
	orderRepo    repositories.OrderRepository
	categoryRepo repositories.CategoryRepositoryImpl
	customerRepo repositories.CustomerRepository
}

func NewStatisticsService(
	orderRepo repositories.OrderRepository,
	categoryRepo repositories.CategoryRepositoryImpl,
	customerRepo repositories.CustomerRepository,
) *StatisticsService {
	return &StatisticsService{
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
	}
}

// GetOverallStatistics pulls the full order set (products joined), all
// categories, and all customers, then reduces everything in memory. No
// caching: each call recomputes from scratch.
func (s *StatisticsService) GetOverallStatistics(ctx context.Context) (*Statistics, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	stats := &Statistics{
		TotalOrders:      len(orders),
		TotalRevenue:     decimal.Zero,
		DeliveredRevenue: decimal.Zero,
		OrdersByProduct:  make(map[string]int),
		OrdersByCategory: make(map[string]int),
	}

	statusCounts := make(map[models.OrderStatus]int)
	productNames := make(map[string]string)
	productRevenue := make(map[string]decimal.Decimal)
	customerNames := make(map[string]string)
	customerOrders := make(map[string]int)
	customerRevenue := make(map[string]decimal.Decimal)
	monthRevenue := make(map[string]decimal.Decimal)
	monthLabels := make(map[string]string)

	for _, order := range orders {
		lineTotal := order.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))

		statusCounts[order.Status]++
		stats.TotalRevenue = stats.TotalRevenue.Add(lineTotal)
		if order.Status == models.OrderStatusDelivered {
			stats.DeliveredRevenue = stats.DeliveredRevenue.Add(lineTotal)
		}

		stats.OrdersByProduct[order.ProductID]++
		productRevenue[order.ProductID] = productRevenue[order.ProductID].Add(lineTotal)
		if order.Product != nil {
			productNames[order.ProductID] = order.Product.Name
			if order.Product.CategoryID != nil {
				stats.OrdersByCategory[*order.Product.CategoryID]++
			}
		}

		customerNames[order.CustomerID] = order.CustomerName
		customerOrders[order.CustomerID]++
		customerRevenue[order.CustomerID] = customerRevenue[order.CustomerID].Add(lineTotal)

		key := order.Date.Format("2006-01")
		monthRevenue[key] = monthRevenue[key].Add(lineTotal)
		monthLabels[key] = order.Date.Format("Jan 2006")
	}

	stats.ConfirmedOrders = statusCounts[models.OrderStatusConfirmed]
	stats.DeliveredOrders = statusCounts[models.OrderStatusDelivered]

	stats.AverageRevenuePerCustomer = decimal.Zero
	if len(customers) > 0 {
		total := decimal.Zero
		for _, c := range customers {
			total = total.Add(customerRevenue[c.ID])
		}
		stats.AverageRevenuePerCustomer = total.Div(decimal.NewFromInt(int64(len(customers))))
	}

	for productID, count := range stats.OrdersByProduct {
		name, ok := productNames[productID]
		if !ok {
			name = "Unknown Product"
		}
		stats.BestSellingProducts = append(stats.BestSellingProducts, BestSellingProduct{
			ProductID: productID,
			Name:      name,
			Count:     count,
			Revenue:   productRevenue[productID],
		})
	}
	sort.Slice(stats.BestSellingProducts, func(i, j int) bool {
		a, b := stats.BestSellingProducts[i], stats.BestSellingProducts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ProductID < b.ProductID
	})
	if len(stats.BestSellingProducts) > 10 {
		stats.BestSellingProducts = stats.BestSellingProducts[:10]
	}

	for customerID, revenue := range customerRevenue {
		stats.BestCustomers = append(stats.BestCustomers, BestCustomer{
			CustomerID: customerID,
			Name:       customerNames[customerID],
			Orders:     customerOrders[customerID],
			Revenue:    revenue,
		})
	}
	sort.Slice(stats.BestCustomers, func(i, j int) bool {
		a, b := stats.BestCustomers[i], stats.BestCustomers[j]
		if cmp := a.Revenue.Cmp(b.Revenue); cmp != 0 {
			return cmp > 0
		}
		return a.CustomerID < b.CustomerID
	})
	if len(stats.BestCustomers) > 10 {
		stats.BestCustomers = stats.BestCustomers[:10]
	}

	for key, revenue := range monthRevenue {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthRevenue{
			Key:     key,
			Label:   monthLabels[key],
			Revenue: revenue,
		})
	}
	sort.Slice(stats.MonthlyRevenue, func(i, j int) bool {
		return stats.MonthlyRevenue[i].Key < stats.MonthlyRevenue[j].Key
	})

	stats.OrderStatusData = []ChartPoint{
		{Name: "Pending", Value: statusCounts[models.OrderStatusPending]},
		{Name: "Confirmed", Value: stats.ConfirmedOrders},
		{Name: "Delivered", Value: stats.DeliveredOrders},
		{Name: "Shipped", Value: statusCounts[models.OrderStatusShipped]},
		{Name: "Canceled", Value: statusCounts[models.OrderStatusCanceled]},
	}

	for categoryID, count := range stats.OrdersByCategory {
		name, ok := categoryNames[categoryID]
		if !ok {
			name = "Unknown Category"
		}
		stats.OrdersByCategoryData = append(stats.OrdersByCategoryData, ChartPoint{Name: name, Value: count})
	}
	sort.Slice(stats.OrdersByCategoryData, func(i, j int) bool {
		a, b := stats.OrdersByCategoryData[i], stats.OrdersByCategoryData[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Name < b.Name
	})

	return stats, nil
}

// GetCustomerStatistics summarises one customer's order history.
func (s *StatisticsService) GetCustomerStatistics(ctx context.Context, customerID string) (*CustomerStatistics, error) {
	orders, err := s.orderRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stats := &CustomerStatistics{
		TotalOrders: len(orders),
		TotalSpent:  decimal.Zero,
	}
	for _, order := range orders {
		lineTotal := order.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
		stats.TotalSpent = stats.TotalSpent.Add(lineTotal)
		stats.Orders = append(stats.Orders, CustomerOrderLine{
			OrderID:   order.ID,
			ProductID: order.ProductID,
			Quantity:  order.Quantity,
			Price:     order.Price,
			Date:      order.Date,
			Status:    order.Status,
		})
	}
	return stats, nil
}
