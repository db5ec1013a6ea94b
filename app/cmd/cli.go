package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hocinedev/dzshop/app/configs"
	"github.com/hocinedev/dzshop/app/db/seeders"
	"github.com/hocinedev/dzshop/app/models/migrations"
	"github.com/hocinedev/dzshop/app/repositories"
	"github.com/hocinedev/dzshop/app/services"
	"github.com/hocinedev/dzshop/app/viewmodels"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with sample catalog and order data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("Seeding complete")
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "Print the admin dashboard snapshot",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					orderRepo := repositories.NewOrderRepository(db)
					categoryRepo := repositories.NewCategoryRepository(db)
					customerRepo := repositories.NewCustomerRepository(db)
					statsSvc := services.NewStatisticsService(orderRepo, categoryRepo, customerRepo)

					stats, err := statsSvc.GetOverallStatistics(ctx)
					if err != nil {
						return err
					}
					orders, err := orderRepo.GetAll(ctx)
					if err != nil {
						return err
					}

					vm := viewmodels.BuildDashboard(stats, orders)
					for _, metric := range vm.Metrics {
						fmt.Printf("%-20s %s\n", metric.Title, metric.Value)
					}
					fmt.Println("\nRevenue by month:")
					for _, point := range vm.RevenueSeries {
						fmt.Printf("  %-10s %.0f\n", point.Name, point.Value)
					}
					fmt.Println("\nOrders by status:")
					for _, point := range vm.StatusSeries {
						fmt.Printf("  %-10s %.0f\n", point.Name, point.Value)
					}
					fmt.Println("\nOrders by category:")
					for _, point := range vm.CategorySeries {
						fmt.Printf("  %-20s %.0f\n", point.Name, point.Value)
					}
					fmt.Println("\nRecent orders:")
					for _, row := range vm.RecentOrders {
						fmt.Printf("  %s  %-20s %-10s %s\n", row.Date.Format("2006-01-02"), row.Customer, row.Status, row.Total)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
