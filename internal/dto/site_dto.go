package dto

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateSiteRequest struct {
	SiteName string  `json:"site_name" validate:"required,max=120"`
	Status   *string `json:"status"    validate:"omitempty,max=50"`
}

type UpdateSiteRequest struct {
	SiteName *string `json:"site_name" validate:"omitempty,min=1,max=120"`
	Status   *string `json:"status"    validate:"omitempty,min=1,max=50"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type SiteResponse struct {
	SiteID   uint   `json:"site_id"`
	SiteName string `json:"site_name"`
	Status   string `json:"status"`
}

type SiteCreatedResponse struct {
	Message string       `json:"message"`
	Site    SiteResponse `json:"site"`
}
