package service

import (
	"context"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

// KPIService builds the dashboard report from a full scan of the store.
type KPIService interface {
	Snapshot(ctx context.Context) (dto.KPIResponse, error)
}

type kpiService struct {
	repo repository.StatsRepository
}

func NewKPIService(repo repository.StatsRepository) KPIService {
	return &kpiService{repo: repo}
}

func (s *kpiService) Snapshot(ctx context.Context) (dto.KPIResponse, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return dto.KPIResponse{}, err
	}
	return Aggregate(snap), nil
}

// Aggregate folds a store snapshot into KPI buckets. Status buckets match
// the stored value exactly: a site with status "wip" or "PAUSED" counts
// toward the total only, and likewise for non-canonical order statuses.
func Aggregate(snap *repository.Snapshot) dto.KPIResponse {
	var report dto.KPIResponse

	for _, sc := range snap.SiteStatuses {
		report.Sites.Total += sc.Count
		switch sc.Status {
		case model.SiteStatusWorking:
			report.Sites.Working += sc.Count
		case model.SiteStatusWIP:
			report.Sites.WIP += sc.Count
		}
	}

	for _, lvl := range snap.StockLevels {
		report.Inventory.Total++
		switch model.ClassifyStock(lvl.Qty, lvl.LowThreshold) {
		case model.StockReorder:
			report.Inventory.Reorder++
		case model.StockLow:
			report.Inventory.Low++
		default:
			report.Inventory.OK++
		}
	}

	report.Orders.ByStatus = make(map[string]int64, len(model.OrderStatuses))
	for _, status := range model.OrderStatuses {
		report.Orders.ByStatus[status] = 0
	}
	for _, sc := range snap.OrderStatuses {
		report.Orders.Total += sc.Count
		if _, canonical := report.Orders.ByStatus[sc.Status]; canonical {
			report.Orders.ByStatus[sc.Status] += sc.Count
		}
	}
	return report
}
