package dto

import "time"

type CreateInventoryRequest struct {
	MaterialID   *uint `json:"material_id"   validate:"required,gt=0"`
	SiteID       *uint `json:"site_id"       validate:"required,gt=0"`
	Qty          *int  `json:"qty"`
	LowThreshold *int  `json:"low_threshold"`
}

// UpdateInventoryRequest is a partial update; absent fields are untouched.
type UpdateInventoryRequest struct {
	Qty          *int `json:"qty"`
	LowThreshold *int `json:"low_threshold"`
}

// InventoryFilter is bound from the query string of GET /api/inventory.
type InventoryFilter struct {
	SiteID *uint `form:"site_id"`
}

type InventoryResponse struct {
	InventoryID  uint      `json:"inventory_id"`
	SiteID       uint      `json:"site_id"`
	SiteName     string    `json:"site_name"`
	MaterialID   uint      `json:"material_id"`
	MaterialName string    `json:"material_name"`
	Qty          int       `json:"qty"`
	LowThreshold int       `json:"low_threshold"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type InventoryUpdatedResponse struct {
	Message   string            `json:"message"`
	Inventory InventoryResponse `json:"inventory"`
}
