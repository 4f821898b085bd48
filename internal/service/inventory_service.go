package service

import (
	"context"
	"errors"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

// InventoryService manages stock rows. Every read carries a freshly
// derived status; nothing about the classification is persisted.
type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) (dto.InventoryResponse, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]dto.InventoryResponse, error)
	Get(ctx context.Context, id uint) (dto.InventoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) (dto.InventoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func mapInventory(i model.Inventory) dto.InventoryResponse {
	resp := dto.InventoryResponse{
		InventoryID:  i.ID,
		SiteID:       i.SiteID,
		MaterialID:   i.MaterialID,
		Qty:          i.Qty,
		LowThreshold: i.LowThreshold,
		Status:       string(i.Status()),
		UpdatedAt:    i.UpdatedAt,
	}
	if i.Site != nil {
		resp.SiteName = i.Site.Name
	}
	if i.Material != nil {
		resp.MaterialName = i.Material.Name
	}
	return resp
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (dto.InventoryResponse, error) {
	errs := fieldErrors{}
	if req.MaterialID == nil || *req.MaterialID == 0 {
		errs.add("material_id", "required")
	}
	if req.SiteID == nil || *req.SiteID == 0 {
		errs.add("site_id", "required")
	}
	if err := errs.err(); err != nil {
		return dto.InventoryResponse{}, err
	}

	inv := &model.Inventory{
		MaterialID:   *req.MaterialID,
		SiteID:       *req.SiteID,
		LowThreshold: model.DefaultLowThreshold,
	}
	if req.Qty != nil {
		inv.Qty = *req.Qty
	}
	if req.LowThreshold != nil {
		inv.LowThreshold = *req.LowThreshold
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return dto.InventoryResponse{}, conflict(err,
				"material %d / site %d: unknown reference or inventory row already exists",
				inv.MaterialID, inv.SiteID)
		}
		return dto.InventoryResponse{}, err
	}
	return s.Get(ctx, inv.ID)
}

func (s *inventoryService) List(ctx context.Context, filter dto.InventoryFilter) ([]dto.InventoryResponse, error) {
	items, err := s.repo.List(ctx, repository.InventoryFilter{SiteID: filter.SiteID})
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapInventory(i))
	}
	return result, nil
}

func (s *inventoryService) Get(ctx context.Context, id uint) (dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.InventoryResponse{}, err
	}
	return mapInventory(*inv), nil
}

// Update applies qty and/or low_threshold. The write always refreshes
// updated_at, even when the values are unchanged.
func (s *inventoryService) Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) (dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.InventoryResponse{}, err
	}
	if req.Qty != nil {
		inv.Qty = *req.Qty
	}
	if req.LowThreshold != nil {
		inv.LowThreshold = *req.LowThreshold
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return dto.InventoryResponse{}, err
	}
	return mapInventory(*inv), nil
}

func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
