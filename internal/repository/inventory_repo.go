package repository

import (
	"context"

	"bfbsupply/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryFilter narrows List; a nil SiteID returns every row.
type InventoryFilter struct {
	SiteID *uint
}

type InventoryRepository interface {
	Create(ctx context.Context, i *model.Inventory) error
	FindByID(ctx context.Context, id uint) (*model.Inventory, error)
	List(ctx context.Context, filter InventoryFilter) ([]model.Inventory, error)
	Update(ctx context.Context, i *model.Inventory) error
	Delete(ctx context.Context, id uint) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, i *model.Inventory) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(i).Error)
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint) (*model.Inventory, error) {
	var i model.Inventory
	err := r.db.WithContext(ctx).Preload("Site").Preload("Material").First(&i, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (r *inventoryRepo) List(ctx context.Context, filter InventoryFilter) ([]model.Inventory, error) {
	q := r.db.WithContext(ctx).Preload("Site").Preload("Material")
	if filter.SiteID != nil {
		q = q.Where("site_id = ?", *filter.SiteID)
	}
	var items []model.Inventory
	err := q.Order("inventory_id").Find(&items).Error
	return items, translate(err)
}

// Update writes every column and always refreshes updated_at.
func (r *inventoryRepo) Update(ctx context.Context, i *model.Inventory) error {
	return affected(r.db.WithContext(ctx).Model(i).
		Select("*").Omit(clause.Associations, "CreatedAt").
		Updates(i))
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Inventory{}, id))
}
