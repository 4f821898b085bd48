package service

import (
	"context"
	"errors"
	"time"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"
	"bfbsupply/internal/repository"
)

// OrderService manages deliveries. Orders and inventory are independent:
// delivering an order does not change any inventory quantity.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (uint, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id uint) (dto.OrderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderService builds the service; now supplies the delivery date.
func NewOrderService(repo repository.OrderRepository, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{repo: repo, now: now}
}

func mapOrder(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		OrderID:     o.ID,
		MaterialID:  o.MaterialID,
		SupplierID:  o.SupplierID,
		SiteID:      o.SiteID,
		Quantity:    o.Quantity,
		ETA:         o.ETA.String(),
		Status:      o.Status,
		DelayReason: o.DelayReason,
	}
	if o.DeliveredAt != nil {
		d := o.DeliveredAt.String()
		resp.DeliveredAt = &d
	}
	if o.Material != nil {
		resp.MaterialName = o.Material.Name
	}
	if o.Supplier != nil {
		resp.SupplierName = o.Supplier.Name
	}
	if o.Site != nil {
		resp.SiteName = o.Site.Name
	}
	return resp
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (uint, error) {
	errs := fieldErrors{}
	if req.MaterialID == nil || *req.MaterialID == 0 {
		errs.add("material_id", "required")
	}
	if req.SupplierID == nil || *req.SupplierID == 0 {
		errs.add("supplier_id", "required")
	}
	if req.SiteID == nil || *req.SiteID == 0 {
		errs.add("site_id", "required")
	}
	if req.Quantity == nil {
		errs.add("quantity", "required")
	}
	var eta model.Date
	if req.ETA == nil {
		errs.add("eta", "required")
	} else if d, err := model.ParseDate(*req.ETA); err != nil {
		errs.add("eta", "must be a YYYY-MM-DD date")
	} else {
		eta = d
	}
	status := model.OrderStatusScheduled
	if req.Status != nil {
		if status = normalizeStatus(*req.Status); status == "" {
			errs.add("status", "must not be blank")
		}
	}
	if err := errs.err(); err != nil {
		return 0, err
	}

	o := &model.Order{
		MaterialID:  *req.MaterialID,
		SupplierID:  *req.SupplierID,
		SiteID:      *req.SiteID,
		Quantity:    *req.Quantity,
		ETA:         eta,
		DelayReason: optionalText(req.DelayReason),
	}
	o.MarkStatus(status, model.NewDate(s.now()))

	if err := s.repo.Create(ctx, o); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return 0, conflict(err, "material, supplier or site does not exist")
		}
		return 0, err
	}
	return o.ID, nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx, repository.OrderFilter{Status: normalizeStatus(filter.Status)})
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, mapOrder(o))
	}
	return result, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	return mapOrder(*o), nil
}

// Update validates the whole request before touching the row, so a bad
// eta never leaves a half-applied status change behind.
func (s *orderService) Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (dto.OrderResponse, error) {
	errs := fieldErrors{}
	var status string
	if req.Status != nil {
		if status = normalizeStatus(*req.Status); status == "" {
			errs.add("status", "must not be blank")
		}
	}
	var eta model.Date
	if req.ETA != nil {
		d, err := model.ParseDate(*req.ETA)
		if err != nil {
			errs.add("eta", "must be a YYYY-MM-DD date")
		}
		eta = d
	}
	if err := errs.err(); err != nil {
		return dto.OrderResponse{}, err
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	if req.Status != nil {
		o.MarkStatus(status, model.NewDate(s.now()))
	}
	if req.ETA != nil {
		o.ETA = eta
	}
	if req.DelayReason != nil {
		o.DelayReason = optionalText(req.DelayReason)
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return dto.OrderResponse{}, err
	}
	return mapOrder(*o), nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
