// Package memory is an in-process implementation of the repository
// interfaces. It enforces the same keys and references as the postgres
// schema and is used by the service and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

// Store holds all five tables behind one lock.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	sites     map[uint]model.Site
	suppliers map[uint]model.Supplier
	materials map[uint]model.Material
	inventory map[uint]model.Inventory
	orders    map[uint]model.Order

	nextID map[string]uint
}

func NewStore() *Store {
	return &Store{
		now:       time.Now,
		sites:     make(map[uint]model.Site),
		suppliers: make(map[uint]model.Supplier),
		materials: make(map[uint]model.Material),
		inventory: make(map[uint]model.Inventory),
		orders:    make(map[uint]model.Order),
		nextID:    make(map[string]uint),
	}
}

// SetClock overrides the timestamp source for created_at / updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Sites() repository.SiteRepository { return siteRepo{s} }

func (s *Store) Suppliers() repository.SupplierRepository { return supplierRepo{s} }

func (s *Store) Materials() repository.MaterialRepository { return materialRepo{s} }

func (s *Store) Inventory() repository.InventoryRepository { return inventoryRepo{s} }

func (s *Store) Orders() repository.OrderRepository { return orderRepo{s} }

func (s *Store) Stats() repository.StatsRepository { return statsRepo{s} }

func (s *Store) id(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

func notFound(table string, id uint) error {
	return fmt.Errorf("%s %d: %w", table, id, repository.ErrNotFound)
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", repository.ErrConstraint, fmt.Sprintf(format, args...))
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// ── Sites ────────────────────────────────────────────────────────────────────

type siteRepo struct{ s *Store }

func (r siteRepo) Create(ctx context.Context, site *model.Site) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if site.Name == "" || site.Status == "" {
		return violation("sites: not-null")
	}
	site.ID = r.s.id("sites")
	r.s.sites[site.ID] = *site
	return nil
}

func (r siteRepo) FindByID(ctx context.Context, id uint) (*model.Site, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	site, ok := r.s.sites[id]
	if !ok {
		return nil, notFound("site", id)
	}
	return &site, nil
}

func (r siteRepo) List(ctx context.Context) ([]model.Site, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Site, 0, len(r.s.sites))
	for _, id := range sortedKeys(r.s.sites) {
		out = append(out, r.s.sites[id])
	}
	return out, nil
}

func (r siteRepo) Update(ctx context.Context, site *model.Site) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sites[site.ID]; !ok {
		return notFound("site", site.ID)
	}
	r.s.sites[site.ID] = *site
	return nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

type supplierRepo struct{ s *Store }

func (r supplierRepo) Create(ctx context.Context, sup *model.Supplier) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sup.Name == "" {
		return violation("suppliers: name not-null")
	}
	sup.ID = r.s.id("suppliers")
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r supplierRepo) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, notFound("supplier", id)
	}
	return &sup, nil
}

func (r supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Supplier, 0, len(r.s.suppliers))
	for _, id := range sortedKeys(r.s.suppliers) {
		out = append(out, r.s.suppliers[id])
	}
	return out, nil
}

func (r supplierRepo) Update(ctx context.Context, sup *model.Supplier) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; !ok {
		return notFound("supplier", sup.ID)
	}
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r supplierRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return notFound("supplier", id)
	}
	for _, o := range r.s.orders {
		if o.SupplierID == id {
			return violation("orders reference supplier %d", id)
		}
	}
	delete(r.s.suppliers, id)
	return nil
}

// ── Materials ────────────────────────────────────────────────────────────────

type materialRepo struct{ s *Store }

func (r materialRepo) skuTaken(sku string, except uint) bool {
	for id, m := range r.s.materials {
		if m.SKU == sku && id != except {
			return true
		}
	}
	return false
}

func (r materialRepo) Create(ctx context.Context, m *model.Material) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.Name == "" || m.SKU == "" {
		return violation("materials: not-null")
	}
	if r.skuTaken(m.SKU, 0) {
		return violation("duplicate sku %q", m.SKU)
	}
	m.ID = r.s.id("materials")
	r.s.materials[m.ID] = *m
	return nil
}

func (r materialRepo) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok {
		return nil, notFound("material", id)
	}
	return &m, nil
}

func (r materialRepo) List(ctx context.Context) ([]model.Material, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Material, 0, len(r.s.materials))
	for _, id := range sortedKeys(r.s.materials) {
		out = append(out, r.s.materials[id])
	}
	return out, nil
}

func (r materialRepo) Update(ctx context.Context, m *model.Material) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[m.ID]; !ok {
		return notFound("material", m.ID)
	}
	if r.skuTaken(m.SKU, m.ID) {
		return violation("duplicate sku %q", m.SKU)
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r materialRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[id]; !ok {
		return notFound("material", id)
	}
	for _, inv := range r.s.inventory {
		if inv.MaterialID == id {
			return violation("inventory references material %d", id)
		}
	}
	for _, o := range r.s.orders {
		if o.MaterialID == id {
			return violation("orders reference material %d", id)
		}
	}
	delete(r.s.materials, id)
	return nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

type inventoryRepo struct{ s *Store }

func (r inventoryRepo) check(i *model.Inventory) error {
	if _, ok := r.s.materials[i.MaterialID]; !ok {
		return violation("inventory.material_id %d does not exist", i.MaterialID)
	}
	if _, ok := r.s.sites[i.SiteID]; !ok {
		return violation("inventory.site_id %d does not exist", i.SiteID)
	}
	for id, other := range r.s.inventory {
		if id != i.ID && other.MaterialID == i.MaterialID && other.SiteID == i.SiteID {
			return violation("inventory for material %d at site %d already exists", i.MaterialID, i.SiteID)
		}
	}
	return nil
}

func (r inventoryRepo) resolve(i model.Inventory) model.Inventory {
	if m, ok := r.s.materials[i.MaterialID]; ok {
		i.Material = &m
	}
	if site, ok := r.s.sites[i.SiteID]; ok {
		i.Site = &site
	}
	return i
}

func (r inventoryRepo) Create(ctx context.Context, i *model.Inventory) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i.ID = 0
	if err := r.check(i); err != nil {
		return err
	}
	now := r.s.now()
	i.ID = r.s.id("inventory")
	i.CreatedAt, i.UpdatedAt = now, now
	row := *i
	row.Material, row.Site = nil, nil
	r.s.inventory[i.ID] = row
	return nil
}

func (r inventoryRepo) FindByID(ctx context.Context, id uint) (*model.Inventory, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.inventory[id]
	if !ok {
		return nil, notFound("inventory", id)
	}
	row = r.resolve(row)
	return &row, nil
}

func (r inventoryRepo) List(ctx context.Context, filter repository.InventoryFilter) ([]model.Inventory, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Inventory, 0, len(r.s.inventory))
	for _, id := range sortedKeys(r.s.inventory) {
		row := r.s.inventory[id]
		if filter.SiteID != nil && row.SiteID != *filter.SiteID {
			continue
		}
		out = append(out, r.resolve(row))
	}
	return out, nil
}

func (r inventoryRepo) Update(ctx context.Context, i *model.Inventory) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.inventory[i.ID]
	if !ok {
		return notFound("inventory", i.ID)
	}
	if err := r.check(i); err != nil {
		return err
	}
	i.CreatedAt = existing.CreatedAt
	i.UpdatedAt = r.s.now()
	row := *i
	row.Material, row.Site = nil, nil
	r.s.inventory[i.ID] = row
	return nil
}

func (r inventoryRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[id]; !ok {
		return notFound("inventory", id)
	}
	delete(r.s.inventory, id)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type orderRepo struct{ s *Store }

func (r orderRepo) check(o *model.Order) error {
	if _, ok := r.s.materials[o.MaterialID]; !ok {
		return violation("orders.material_id %d does not exist", o.MaterialID)
	}
	if _, ok := r.s.suppliers[o.SupplierID]; !ok {
		return violation("orders.supplier_id %d does not exist", o.SupplierID)
	}
	if _, ok := r.s.sites[o.SiteID]; !ok {
		return violation("orders.site_id %d does not exist", o.SiteID)
	}
	if o.Status == "" {
		return violation("orders.status not-null")
	}
	return nil
}

func (r orderRepo) resolve(o model.Order) model.Order {
	if m, ok := r.s.materials[o.MaterialID]; ok {
		o.Material = &m
	}
	if sup, ok := r.s.suppliers[o.SupplierID]; ok {
		o.Supplier = &sup
	}
	if site, ok := r.s.sites[o.SiteID]; ok {
		o.Site = &site
	}
	return o
}

func (r orderRepo) Create(ctx context.Context, o *model.Order) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(o); err != nil {
		return err
	}
	now := r.s.now()
	o.ID = r.s.id("orders")
	o.CreatedAt, o.UpdatedAt = now, now
	row := *o
	row.Material, row.Supplier, row.Site = nil, nil, nil
	r.s.orders[o.ID] = row
	return nil
}

func (r orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("order", id)
	}
	row = r.resolve(row)
	return &row, nil
}

func (r orderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Order, 0, len(r.s.orders))
	for _, id := range sortedKeys(r.s.orders) {
		row := r.s.orders[id]
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		out = append(out, r.resolve(row))
	}
	return out, nil
}

func (r orderRepo) Update(ctx context.Context, o *model.Order) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.orders[o.ID]
	if !ok {
		return notFound("order", o.ID)
	}
	if err := r.check(o); err != nil {
		return err
	}
	o.CreatedAt = existing.CreatedAt
	o.UpdatedAt = r.s.now()
	row := *o
	row.Material, row.Supplier, row.Site = nil, nil, nil
	r.s.orders[o.ID] = row
	return nil
}

func (r orderRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return notFound("order", id)
	}
	delete(r.s.orders, id)
	return nil
}

// ── Stats ────────────────────────────────────────────────────────────────────

type statsRepo struct{ s *Store }

func (r statsRepo) Snapshot(ctx context.Context) (*repository.Snapshot, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var snap repository.Snapshot
	siteCounts := map[string]int64{}
	for _, site := range r.s.sites {
		siteCounts[site.Status]++
	}
	snap.SiteStatuses = toStatusCounts(siteCounts)

	for _, id := range sortedKeys(r.s.inventory) {
		row := r.s.inventory[id]
		snap.StockLevels = append(snap.StockLevels, repository.StockLevel{Qty: row.Qty, LowThreshold: row.LowThreshold})
	}

	orderCounts := map[string]int64{}
	for _, o := range r.s.orders {
		orderCounts[o.Status]++
	}
	snap.OrderStatuses = toStatusCounts(orderCounts)
	return &snap, nil
}

func toStatusCounts(m map[string]int64) []repository.StatusCount {
	out := make([]repository.StatusCount, 0, len(m))
	for status, n := range m {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}
