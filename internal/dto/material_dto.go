package dto

type CreateMaterialRequest struct {
	Name     string  `json:"name"     validate:"required,max=120"`
	SKU      string  `json:"sku"      validate:"required,max=80"`
	Category *string `json:"category" validate:"omitempty,max=80"`
}

type UpdateMaterialRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=120"`
	SKU      *string `json:"sku"      validate:"omitempty,min=1,max=80"`
	Category *string `json:"category" validate:"omitempty,max=80"`
}

type MaterialResponse struct {
	MaterialID uint    `json:"material_id"`
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Category   *string `json:"category"`
}
