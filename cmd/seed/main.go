// cmd/seed resets the database to the demo fixture set: two sites, two
// suppliers, three materials, three inventory rows and two orders.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"bfbsupply/internal/config"
	"bfbsupply/internal/infra"
	"bfbsupply/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL, infra.DBOptions{MaxOpenConns: 2})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, db, model.Today()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("database seeded")
}

// seed wipes every table and inserts the fixtures in one transaction.
// Order ETAs are relative to today.
func seed(ctx context.Context, db *gorm.DB, today model.Date) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE orders, inventory, materials, suppliers, sites RESTART IDENTITY CASCADE").Error; err != nil {
			return err
		}

		site1 := &model.Site{Name: "CBD Office Tower", Status: model.SiteStatusWorking}
		site2 := &model.Site{Name: "North Bridge Project", Status: model.SiteStatusWIP}
		if err := tx.Create([]*model.Site{site1, site2}).Error; err != nil {
			return err
		}

		sup1 := &model.Supplier{Name: "BuildSmart Cement", Email: ptr("orders@buildsmart.co.za"), Phone: ptr("+27 12 111 1111")}
		sup2 := &model.Supplier{Name: "Sand & More", Email: ptr("info@sandmore.co.za"), Phone: ptr("+27 12 222 2222")}
		if err := tx.Create([]*model.Supplier{sup1, sup2}).Error; err != nil {
			return err
		}

		mat1 := &model.Material{Name: "Cement 50kg", SKU: "CEM50", Category: ptr("Concrete")}
		mat2 := &model.Material{Name: "River Sand", SKU: "SAND-RIV", Category: ptr("Aggregate")}
		mat3 := &model.Material{Name: "Rebar 12mm", SKU: "REBAR12", Category: ptr("Steel")}
		if err := tx.Create([]*model.Material{mat1, mat2, mat3}).Error; err != nil {
			return err
		}

		stock := []*model.Inventory{
			{MaterialID: mat1.ID, SiteID: site1.ID, Qty: 120, LowThreshold: 50},
			{MaterialID: mat2.ID, SiteID: site1.ID, Qty: 40, LowThreshold: 30},
			{MaterialID: mat3.ID, SiteID: site2.ID, Qty: 15, LowThreshold: 20},
		}
		if err := tx.Omit("Material", "Site").Create(stock).Error; err != nil {
			return err
		}

		orders := []*model.Order{
			{MaterialID: mat2.ID, SupplierID: sup2.ID, SiteID: site1.ID, ETA: today.AddDays(3), Status: model.OrderStatusInTransit},
			{MaterialID: mat1.ID, SupplierID: sup1.ID, SiteID: site2.ID, ETA: today.AddDays(7), Status: model.OrderStatusScheduled},
		}
		return tx.Omit("Material", "Supplier", "Site").Create(orders).Error
	})
}

func ptr(s string) *string { return &s }
