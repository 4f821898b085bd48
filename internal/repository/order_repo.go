package repository

import (
	"context"

	"bfbsupply/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows List; an empty Status returns every order.
type OrderFilter struct {
	Status string
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uint) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error)
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := r.withRefs(ctx).First(&o, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	q := r.withRefs(ctx)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var orders []model.Order
	err := q.Order("order_id").Find(&orders).Error
	return orders, translate(err)
}

// Update writes every column and always refreshes updated_at.
func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return affected(r.db.WithContext(ctx).Model(o).
		Select("*").Omit(clause.Associations, "CreatedAt").
		Updates(o))
}

func (r *orderRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Order{}, id))
}

func (r *orderRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Material").
		Preload("Supplier").
		Preload("Site")
}
