package viewmodels

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hocinedev/dzshop/app/models"
	"github.com/hocinedev/dzshop/app/services"
	"github.com/hocinedev/dzshop/app/utils/format"
)

type MetricCard struct {
	Title string
	Value string
}

type SeriesPoint struct {
	Name  string
	Value float64
}

type RecentOrderRow struct {
	OrderID  string
	Customer string
	Phone    string
	Status   string
	Total    string
	Date     time.Time
}

// DashboardViewModel is the display-ready shape the admin dashboard and
// statistics pages consume: formatted currency, chart series, and the
// five most recent orders. No business logic lives here.
type DashboardViewModel struct {
	Metrics        []MetricCard
	RevenueSeries  []SeriesPoint
	StatusSeries   []SeriesPoint
	CategorySeries []SeriesPoint
	RecentOrders   []RecentOrderRow
}

// BuildDashboard adapts a statistics snapshot and the (date-descending)
// order list for display.
func BuildDashboard(stats *services.Statistics, orders []models.Order) DashboardViewModel {
	vm := DashboardViewModel{
		Metrics: []MetricCard{
			{Title: "Total Orders", Value: strconv.Itoa(stats.TotalOrders)},
			{Title: "Total Revenue", Value: format.DZD(stats.TotalRevenue)},
			{Title: "Delivered Revenue", Value: format.DZD(stats.DeliveredRevenue)},
			{Title: "Confirmed Orders", Value: strconv.Itoa(stats.ConfirmedOrders)},
			{Title: "Delivered Orders", Value: strconv.Itoa(stats.DeliveredOrders)},
		},
	}

	for _, month := range stats.MonthlyRevenue {
		vm.RevenueSeries = append(vm.RevenueSeries, SeriesPoint{
			Name:  month.Label,
			Value: month.Revenue.InexactFloat64(),
		})
	}
	for _, point := range stats.OrderStatusData {
		vm.StatusSeries = append(vm.StatusSeries, SeriesPoint{Name: point.Name, Value: float64(point.Value)})
	}
	for _, point := range stats.OrdersByCategoryData {
		vm.CategorySeries = append(vm.CategorySeries, SeriesPoint{Name: point.Name, Value: float64(point.Value)})
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, order := range recent {
		total := order.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
		vm.RecentOrders = append(vm.RecentOrders, RecentOrderRow{
			OrderID:  order.ID,
			Customer: order.CustomerName,
			Phone:    order.CustomerPhone,
			Status:   string(order.Status),
			Total:    format.DZD(total),
			Date:     order.Date,
		})
	}
	return vm
}
