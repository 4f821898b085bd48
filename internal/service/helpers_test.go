package service_test

import (
	"context"
	"testing"
	"time"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/repository/memory"
	"bfbsupply/internal/service"

	"github.com/stretchr/testify/require"
)

// fixture is a store with one site, supplier and material already present.
type fixture struct {
	store      *memory.Store
	siteID     uint
	supplierID uint
	materialID uint
}

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	site, err := service.NewSiteService(store.Sites()).Create(ctx, dto.CreateSiteRequest{SiteName: "CBD Office Tower"})
	require.NoError(t, err)
	sup, err := service.NewSupplierService(store.Suppliers()).Create(ctx, dto.CreateSupplierRequest{Name: "BuildSmart Cement"})
	require.NoError(t, err)
	mat, err := service.NewMaterialService(store.Materials()).Create(ctx, dto.CreateMaterialRequest{Name: "Cement 50kg", SKU: "CEM50"})
	require.NoError(t, err)

	return &fixture{store: store, siteID: site.SiteID, supplierID: sup.SupplierID, materialID: mat.MaterialID}
}

func ptr[T any](v T) *T { return &v }
