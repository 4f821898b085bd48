package service

import (
	"context"
	"errors"
	"strings"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (dto.MaterialResponse, error)
	List(ctx context.Context) ([]dto.MaterialResponse, error)
	Get(ctx context.Context, id uint) (dto.MaterialResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateMaterialRequest) (dto.MaterialResponse, error)
	Delete(ctx context.Context, id uint) error
}

type materialService struct {
	repo repository.MaterialRepository
}

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func mapMaterial(m model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{MaterialID: m.ID, Name: m.Name, SKU: m.SKU, Category: m.Category}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (dto.MaterialResponse, error) {
	errs := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.add("name", "required")
	}
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		errs.add("sku", "required")
	}
	if err := errs.err(); err != nil {
		return dto.MaterialResponse{}, err
	}

	m := &model.Material{Name: name, SKU: sku, Category: optionalText(req.Category)}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return dto.MaterialResponse{}, conflict(err, "sku %q already exists", sku)
		}
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMaterial(m))
	}
	return result, nil
}

func (s *materialService) Get(ctx context.Context, id uint) (dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) Update(ctx context.Context, id uint, req dto.UpdateMaterialRequest) (dto.MaterialResponse, error) {
	errs := fieldErrors{}
	var name, sku string
	if req.Name != nil {
		if name = strings.TrimSpace(*req.Name); name == "" {
			errs.add("name", "must not be blank")
		}
	}
	if req.SKU != nil {
		if sku = strings.TrimSpace(*req.SKU); sku == "" {
			errs.add("sku", "must not be blank")
		}
	}
	if err := errs.err(); err != nil {
		return dto.MaterialResponse{}, err
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.MaterialResponse{}, err
	}
	if req.Name != nil {
		m.Name = name
	}
	if req.SKU != nil {
		m.SKU = sku
	}
	if req.Category != nil {
		m.Category = optionalText(req.Category)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return dto.MaterialResponse{}, conflict(err, "sku %q already exists", m.SKU)
		}
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrConstraint) {
		return conflict(err, "material %d is still referenced by inventory or orders", id)
	}
	return err
}
