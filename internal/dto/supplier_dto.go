package dto

type CreateSupplierRequest struct {
	Name  string  `json:"name"  validate:"required,max=120"`
	Email *string `json:"email" validate:"omitempty,email,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

type UpdateSupplierRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=120"`
	Email *string `json:"email" validate:"omitempty,email,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

type SupplierResponse struct {
	SupplierID uint    `json:"supplier_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}
