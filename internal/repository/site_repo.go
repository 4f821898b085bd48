package repository

import (
	"context"

	"bfbsupply/internal/model"

	"gorm.io/gorm"
)

type SiteRepository interface {
	Create(ctx context.Context, s *model.Site) error
	FindByID(ctx context.Context, id uint) (*model.Site, error)
	List(ctx context.Context) ([]model.Site, error)
	Update(ctx context.Context, s *model.Site) error
}

type siteRepo struct{ db *gorm.DB }

func NewSiteRepository(db *gorm.DB) SiteRepository { return &siteRepo{db: db} }

func (r *siteRepo) Create(ctx context.Context, s *model.Site) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *siteRepo) FindByID(ctx context.Context, id uint) (*model.Site, error) {
	var s model.Site
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *siteRepo) List(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	err := r.db.WithContext(ctx).Order("site_id").Find(&sites).Error
	return sites, translate(err)
}

func (r *siteRepo) Update(ctx context.Context, s *model.Site) error {
	return affected(r.db.WithContext(ctx).Model(s).Select("*").Updates(s))
}
