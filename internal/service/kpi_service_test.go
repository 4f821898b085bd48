package service_test

import (
	"context"
	"testing"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/repository"
	"bfbsupply/internal/repository/memory"
	"bfbsupply/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKPISnapshot_EmptyStore(t *testing.T) {
	svc := service.NewKPIService(memory.NewStore().Stats())

	report, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SiteKPI{}, report.Sites)
	assert.Equal(t, dto.InventoryKPI{}, report.Inventory)
	assert.Equal(t, int64(0), report.Orders.Total)
	assert.Equal(t, map[string]int64{"SCHEDULED": 0, "IN_TRANSIT": 0, "DELAYED": 0, "DELIVERED": 0}, report.Orders.ByStatus)
}

// Demo data: two sites, inventory 120/50, 40/30, 15/20 and two orders.
func TestKPISnapshot_DemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	sites := service.NewSiteService(store.Sites())
	s1, err := sites.Create(ctx, dto.CreateSiteRequest{SiteName: "CBD Office Tower", Status: ptr("WORKING")})
	require.NoError(t, err)
	s2, err := sites.Create(ctx, dto.CreateSiteRequest{SiteName: "North Bridge Project", Status: ptr("WIP")})
	require.NoError(t, err)

	sup, err := service.NewSupplierService(store.Suppliers()).Create(ctx, dto.CreateSupplierRequest{Name: "Sand & More"})
	require.NoError(t, err)

	materials := service.NewMaterialService(store.Materials())
	m1, err := materials.Create(ctx, dto.CreateMaterialRequest{Name: "Cement 50kg", SKU: "CEM50"})
	require.NoError(t, err)
	m2, err := materials.Create(ctx, dto.CreateMaterialRequest{Name: "River Sand", SKU: "SAND-RIV"})
	require.NoError(t, err)
	m3, err := materials.Create(ctx, dto.CreateMaterialRequest{Name: "Rebar 12mm", SKU: "REBAR12"})
	require.NoError(t, err)

	inventory := service.NewInventoryService(store.Inventory())
	for _, row := range []struct {
		mat, site uint
		qty, low  int
	}{
		{m1.MaterialID, s1.SiteID, 120, 50},
		{m2.MaterialID, s1.SiteID, 40, 30},
		{m3.MaterialID, s2.SiteID, 15, 20},
	} {
		_, err := inventory.Create(ctx, dto.CreateInventoryRequest{
			MaterialID: ptr(row.mat), SiteID: ptr(row.site), Qty: ptr(row.qty), LowThreshold: ptr(row.low),
		})
		require.NoError(t, err)
	}

	orders := service.NewOrderService(store.Orders(), nil)
	for _, status := range []string{"IN_TRANSIT", "SCHEDULED"} {
		_, err := orders.Create(ctx, dto.CreateOrderRequest{
			MaterialID: &m1.MaterialID, SupplierID: &sup.SupplierID, SiteID: &s1.SiteID,
			ETA: ptr("2025-05-10"), Quantity: ptr(1), Status: ptr(status),
		})
		require.NoError(t, err)
	}

	report, err := service.NewKPIService(store.Stats()).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.SiteKPI{Total: 2, Working: 1, WIP: 1}, report.Sites)
	assert.Equal(t, dto.InventoryKPI{Total: 3, OK: 2, Low: 1, Reorder: 0}, report.Inventory)
	assert.Equal(t, int64(2), report.Orders.Total)
	assert.Equal(t, int64(1), report.Orders.ByStatus["IN_TRANSIT"])
	assert.Equal(t, int64(1), report.Orders.ByStatus["SCHEDULED"])
	assert.Equal(t, int64(0), report.Orders.ByStatus["DELIVERED"])
}

// Buckets match exactly; unknown statuses only count toward totals.
func TestAggregate_ExactMatchBuckets(t *testing.T) {
	report := service.Aggregate(&repository.Snapshot{
		SiteStatuses: []repository.StatusCount{
			{Status: "PAUSED", Count: 2},
			{Status: "WIP", Count: 1},
			{Status: "WORKING", Count: 3},
			{Status: "wip", Count: 4},
		},
		StockLevels: []repository.StockLevel{
			{Qty: 0, LowThreshold: 10},
			{Qty: -1, LowThreshold: 0},
			{Qty: 10, LowThreshold: 10},
			{Qty: 11, LowThreshold: 10},
		},
		OrderStatuses: []repository.StatusCount{
			{Status: "CANCELLED", Count: 5},
			{Status: "DELIVERED", Count: 2},
		},
	})

	assert.Equal(t, dto.SiteKPI{Total: 10, Working: 3, WIP: 1}, report.Sites)
	assert.Equal(t, dto.InventoryKPI{Total: 4, OK: 1, Low: 1, Reorder: 2}, report.Inventory)
	assert.Equal(t, int64(7), report.Orders.Total)
	assert.Equal(t, int64(2), report.Orders.ByStatus["DELIVERED"])
	assert.NotContains(t, report.Orders.ByStatus, "CANCELLED")
	assert.Len(t, report.Orders.ByStatus, 4)
}

func TestKPISnapshot_StoreUnavailable(t *testing.T) {
	svc := service.NewKPIService(memory.NewStore().Stats())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Snapshot(ctx)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
