package service

import (
	"context"
	"errors"
	"strings"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Get(ctx context.Context, id uint) (dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{SupplierID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (dto.SupplierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.SupplierResponse{}, &ValidationError{Fields: map[string]string{"name": "required"}}
	}
	sup := &model.Supplier{
		Name:  name,
		Email: optionalText(req.Email),
		Phone: optionalText(req.Phone),
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		result = append(result, mapSupplier(sup))
	}
	return result, nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (dto.SupplierResponse, error) {
	var name string
	if req.Name != nil {
		if name = strings.TrimSpace(*req.Name); name == "" {
			return dto.SupplierResponse{}, &ValidationError{Fields: map[string]string{"name": "must not be blank"}}
		}
	}

	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.SupplierResponse{}, err
	}
	if req.Name != nil {
		sup.Name = name
	}
	if req.Email != nil {
		sup.Email = optionalText(req.Email)
	}
	if req.Phone != nil {
		sup.Phone = optionalText(req.Phone)
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrConstraint) {
		return conflict(err, "supplier %d is still referenced by orders", id)
	}
	return err
}
