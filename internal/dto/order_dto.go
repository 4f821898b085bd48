package dto

// CreateOrderRequest mirrors the columns of an order. Pointers distinguish
// "absent" from zero so that missing required fields are rejected.
type CreateOrderRequest struct {
	MaterialID  *uint   `json:"material_id"  validate:"required,gt=0"`
	SupplierID  *uint   `json:"supplier_id"  validate:"required,gt=0"`
	SiteID      *uint   `json:"site_id"      validate:"required,gt=0"`
	ETA         *string `json:"eta"          validate:"required,datetime=2006-01-02"`
	Quantity    *int    `json:"quantity"     validate:"required,min=0"`
	Status      *string `json:"status"       validate:"omitempty,min=1,max=50"`
	DelayReason *string `json:"delay_reason" validate:"omitempty,max=255"`
}

type UpdateOrderRequest struct {
	Status      *string `json:"status"       validate:"omitempty,min=1,max=50"`
	ETA         *string `json:"eta"          validate:"omitempty,datetime=2006-01-02"`
	Quantity    *int    `json:"quantity"     validate:"omitempty,min=0"`
	DelayReason *string `json:"delay_reason" validate:"omitempty,max=255"`
}

type OrderFilter struct {
	Status string `form:"status"`
}

type OrderResponse struct {
	OrderID      uint    `json:"order_id"`
	MaterialID   uint    `json:"material_id"`
	MaterialName string  `json:"material_name"`
	SupplierID   uint    `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	SiteID       uint    `json:"site_id"`
	SiteName     string  `json:"site_name"`
	Quantity     int     `json:"quantity"`
	ETA          string  `json:"eta"`
	Status       string  `json:"status"`
	DeliveredAt  *string `json:"delivered_at"`
	DelayReason  *string `json:"delay_reason"`
}

type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

type OrderUpdatedResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
