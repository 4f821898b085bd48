//go:build integration

// Integration tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/repository/... -v
package repository_test

import (
	"context"
	"errors"
	"testing"

	"bfbsupply/internal/infra"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("bfbsupply_test"),
		tcPostgres.WithUsername("bfb"),
		tcPostgres.WithPassword("bfb"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn, infra.DBOptions{MaxOpenConns: 4})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	// second run is a no-op
	require.NoError(t, infra.RunMigrations(db))
	return db
}

type fixture struct {
	site     *model.Site
	supplier *model.Supplier
	material *model.Material
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{
		site:     &model.Site{Name: "CBD Office Tower", Status: model.SiteStatusWorking},
		supplier: &model.Supplier{Name: "BuildSmart Cement"},
		material: &model.Material{Name: "Cement 50kg", SKU: "CEM50"},
	}
	require.NoError(t, repository.NewSiteRepository(db).Create(ctx, f.site))
	require.NoError(t, repository.NewSupplierRepository(db).Create(ctx, f.supplier))
	require.NoError(t, repository.NewMaterialRepository(db).Create(ctx, f.material))
	return f
}

func TestPostgres(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()

	materials := repository.NewMaterialRepository(db)
	inventory := repository.NewInventoryRepository(db)
	orders := repository.NewOrderRepository(db)
	suppliers := repository.NewSupplierRepository(db)
	stats := repository.NewStatsRepository(db)

	t.Run("duplicate sku is a constraint error", func(t *testing.T) {
		err := materials.Create(ctx, &model.Material{Name: "dup", SKU: "CEM50"})
		assert.True(t, errors.Is(err, repository.ErrConstraint))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := materials.FindByID(ctx, 9999)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		err = orders.Delete(ctx, 9999)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})

	var invID uint
	t.Run("inventory round trip keeps zero threshold", func(t *testing.T) {
		inv := &model.Inventory{MaterialID: f.material.ID, SiteID: f.site.ID, Qty: 0, LowThreshold: 0}
		require.NoError(t, inventory.Create(ctx, inv))
		invID = inv.ID

		got, err := inventory.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.LowThreshold)
		assert.Equal(t, model.StockReorder, got.Status())
		require.NotNil(t, got.Site)
		assert.Equal(t, "CBD Office Tower", got.Site.Name)

		before := got.UpdatedAt
		got.Qty = 12
		require.NoError(t, inventory.Update(ctx, got))
		again, err := inventory.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, again.Qty)
		assert.False(t, again.UpdatedAt.Before(before))
	})

	t.Run("duplicate material/site pair is a constraint error", func(t *testing.T) {
		err := inventory.Create(ctx, &model.Inventory{MaterialID: f.material.ID, SiteID: f.site.ID})
		assert.True(t, errors.Is(err, repository.ErrConstraint))
	})

	t.Run("order with unknown site is a constraint error", func(t *testing.T) {
		err := orders.Create(ctx, &model.Order{
			MaterialID: f.material.ID, SupplierID: f.supplier.ID, SiteID: 4242,
			Quantity: 1, ETA: model.Today(), Status: model.OrderStatusScheduled,
		})
		assert.True(t, errors.Is(err, repository.ErrConstraint))
	})

	t.Run("order delivered_at survives later updates", func(t *testing.T) {
		o := &model.Order{
			MaterialID: f.material.ID, SupplierID: f.supplier.ID, SiteID: f.site.ID,
			Quantity: 5, ETA: model.Today().AddDays(3), Status: model.OrderStatusScheduled,
		}
		require.NoError(t, orders.Create(ctx, o))

		d, _ := model.ParseDate("2025-05-01")
		o.MarkStatus(model.OrderStatusDelivered, d)
		require.NoError(t, orders.Update(ctx, o))

		got, err := orders.FindByID(ctx, o.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DeliveredAt)
		assert.Equal(t, "2025-05-01", got.DeliveredAt.String())
		assert.Equal(t, "BuildSmart Cement", got.Supplier.Name)

		list, err := orders.List(ctx, repository.OrderFilter{Status: model.OrderStatusDelivered})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("referenced supplier cannot be deleted", func(t *testing.T) {
		err := suppliers.Delete(ctx, f.supplier.ID)
		assert.True(t, errors.Is(err, repository.ErrConstraint))
	})

	t.Run("snapshot", func(t *testing.T) {
		snap, err := stats.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []repository.StatusCount{{Status: "WORKING", Count: 1}}, snap.SiteStatuses)
		assert.Equal(t, []repository.StockLevel{{Qty: 12, LowThreshold: 0}}, snap.StockLevels)
		assert.Equal(t, []repository.StatusCount{{Status: "DELIVERED", Count: 1}}, snap.OrderStatuses)
	})

	t.Run("inventory delete", func(t *testing.T) {
		require.NoError(t, inventory.Delete(ctx, invID))
		_, err := inventory.FindByID(ctx, invID)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
