package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/repository"
	"bfbsupply/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) orderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		MaterialID: &f.materialID,
		SupplierID: &f.supplierID,
		SiteID:     &f.siteID,
		ETA:        ptr("2025-05-10"),
		Quantity:   ptr(100),
	}
}

func TestCreateOrder_DefaultsToScheduled(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), fixedClock("2025-05-01T10:00:00Z"))
	ctx := context.Background()

	id, err := svc.Create(ctx, f.orderRequest())
	require.NoError(t, err)
	require.NotZero(t, id)

	o, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", o.Status)
	assert.Equal(t, "2025-05-10", o.ETA)
	assert.Nil(t, o.DeliveredAt)
	assert.Equal(t, "BuildSmart Cement", o.SupplierName)
	assert.Equal(t, "Cement 50kg", o.MaterialName)
	assert.Equal(t, "CBD Office Tower", o.SiteName)
}

func TestCreateOrder_DeliveredStampsToday(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), fixedClock("2025-05-01T10:00:00Z"))
	req := f.orderRequest()
	req.Status = ptr("delivered")

	id, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	o, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", o.Status)
	require.NotNil(t, o.DeliveredAt)
	assert.Equal(t, "2025-05-01", *o.DeliveredAt)
}

func TestCreateOrder_MissingQuantity(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), nil)
	req := f.orderRequest()
	req.Quantity = nil

	_, err := svc.Create(context.Background(), req)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")

	list, err := svc.List(context.Background(), dto.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateOrder_BadETA(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), nil)
	req := f.orderRequest()
	req.ETA = ptr("10/05/2025")

	_, err := svc.Create(context.Background(), req)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "eta")
}

func TestCreateOrder_UnknownSupplier(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), nil)
	req := f.orderRequest()
	req.SupplierID = ptr(uint(404))

	_, err := svc.Create(context.Background(), req)
	var cerr *service.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, errors.Is(err, repository.ErrConstraint))
}

func TestUpdateOrder_DeliveredAtSetOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := fixedClock("2025-05-01T10:00:00Z")
	svc := service.NewOrderService(f.store.Orders(), func() time.Time { return now() })

	id, err := svc.Create(ctx, f.orderRequest())
	require.NoError(t, err)

	o, err := svc.Update(ctx, id, dto.UpdateOrderRequest{Status: ptr("Delivered")})
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", o.Status)
	require.NotNil(t, o.DeliveredAt)
	assert.Equal(t, "2025-05-01", *o.DeliveredAt)

	now = fixedClock("2025-05-09T10:00:00Z")
	o, err = svc.Update(ctx, id, dto.UpdateOrderRequest{Status: ptr("DELIVERED")})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", *o.DeliveredAt)

	o, err = svc.Update(ctx, id, dto.UpdateOrderRequest{Status: ptr("delayed"), DelayReason: ptr("returned: wrong grade")})
	require.NoError(t, err)
	assert.Equal(t, "DELAYED", o.Status)
	assert.Equal(t, "2025-05-01", *o.DeliveredAt)
	assert.Equal(t, "returned: wrong grade", *o.DelayReason)
}

func TestUpdateOrder_InvalidETALeavesRowUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewOrderService(f.store.Orders(), fixedClock("2025-05-01T10:00:00Z"))
	id, err := svc.Create(ctx, f.orderRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, dto.UpdateOrderRequest{Status: ptr("DELIVERED"), ETA: ptr("not-a-date")})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)

	o, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", o.Status)
	assert.Nil(t, o.DeliveredAt)
}

func TestUpdateOrder_PartialFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewOrderService(f.store.Orders(), nil)
	id, err := svc.Create(ctx, f.orderRequest())
	require.NoError(t, err)

	o, err := svc.Update(ctx, id, dto.UpdateOrderRequest{ETA: ptr("2025-06-01"), Quantity: ptr(80)})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", o.ETA)
	assert.Equal(t, 80, o.Quantity)
	assert.Equal(t, "SCHEDULED", o.Status)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := service.NewOrderService(f.store.Orders(), nil)
	_, err := svc.Update(context.Background(), 12, dto.UpdateOrderRequest{Status: ptr("DELAYED")})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeleteOrder_ThenNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewOrderService(f.store.Orders(), nil)
	id, err := svc.Create(ctx, f.orderRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.True(t, errors.Is(svc.Delete(ctx, id), repository.ErrNotFound))
}

func TestListOrders_StatusFilterCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewOrderService(f.store.Orders(), nil)

	req := f.orderRequest()
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	req.Status = ptr("IN_TRANSIT")
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	list, err := svc.List(ctx, dto.OrderFilter{Status: "in_transit"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "IN_TRANSIT", list[0].Status)
}

// Delivering an order leaves inventory quantities alone.
func TestDeliverOrder_DoesNotTouchInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inventory := service.NewInventoryService(f.store.Inventory())
	inv, err := inventory.Create(ctx, dto.CreateInventoryRequest{MaterialID: &f.materialID, SiteID: &f.siteID, Qty: ptr(7)})
	require.NoError(t, err)

	orders := service.NewOrderService(f.store.Orders(), nil)
	id, err := orders.Create(ctx, f.orderRequest())
	require.NoError(t, err)
	_, err = orders.Update(ctx, id, dto.UpdateOrderRequest{Status: ptr("DELIVERED")})
	require.NoError(t, err)

	after, err := inventory.Get(ctx, inv.InventoryID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.Qty)
}
