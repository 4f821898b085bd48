package repository

import (
	"context"

	"bfbsupply/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uint) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id uint) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *materialRepo) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Order("material_id").Find(&materials).Error
	return materials, translate(err)
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return affected(r.db.WithContext(ctx).Model(m).Select("*").Updates(m))
}

func (r *materialRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Material{}, id))
}
