package service

import (
	"context"
	"strings"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

// SiteService manages construction sites. Sites are never deleted.
type SiteService interface {
	Create(ctx context.Context, req dto.CreateSiteRequest) (dto.SiteResponse, error)
	List(ctx context.Context) ([]dto.SiteResponse, error)
	Get(ctx context.Context, id uint) (dto.SiteResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSiteRequest) (dto.SiteResponse, error)
}

type siteService struct {
	repo repository.SiteRepository
}

func NewSiteService(repo repository.SiteRepository) SiteService {
	return &siteService{repo: repo}
}

func mapSite(s model.Site) dto.SiteResponse {
	return dto.SiteResponse{SiteID: s.ID, SiteName: s.Name, Status: s.Status}
}

func (s *siteService) Create(ctx context.Context, req dto.CreateSiteRequest) (dto.SiteResponse, error) {
	errs := fieldErrors{}
	name := strings.TrimSpace(req.SiteName)
	if name == "" {
		errs.add("site_name", "required")
	}
	status := model.SiteStatusWorking
	if req.Status != nil {
		if status = normalizeStatus(*req.Status); status == "" {
			errs.add("status", "must not be blank")
		}
	}
	if err := errs.err(); err != nil {
		return dto.SiteResponse{}, err
	}

	site := &model.Site{Name: name, Status: status}
	if err := s.repo.Create(ctx, site); err != nil {
		return dto.SiteResponse{}, err
	}
	return mapSite(*site), nil
}

func (s *siteService) List(ctx context.Context) ([]dto.SiteResponse, error) {
	sites, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SiteResponse, 0, len(sites))
	for _, site := range sites {
		result = append(result, mapSite(site))
	}
	return result, nil
}

func (s *siteService) Get(ctx context.Context, id uint) (dto.SiteResponse, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	return mapSite(*site), nil
}

func (s *siteService) Update(ctx context.Context, id uint, req dto.UpdateSiteRequest) (dto.SiteResponse, error) {
	errs := fieldErrors{}
	var name, status string
	if req.SiteName != nil {
		if name = strings.TrimSpace(*req.SiteName); name == "" {
			errs.add("site_name", "must not be blank")
		}
	}
	if req.Status != nil {
		if status = normalizeStatus(*req.Status); status == "" {
			errs.add("status", "must not be blank")
		}
	}
	if err := errs.err(); err != nil {
		return dto.SiteResponse{}, err
	}

	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	if req.SiteName != nil {
		site.Name = name
	}
	if req.Status != nil {
		site.Status = status
	}
	if err := s.repo.Update(ctx, site); err != nil {
		return dto.SiteResponse{}, err
	}
	return mapSite(*site), nil
}
