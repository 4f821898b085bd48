package handler

import (
	"net/http"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/service"

	"github.com/gin-gonic/gin"
)

type SitesHandler struct{ svc service.SiteService }

func NewSitesHandler(svc service.SiteService) *SitesHandler {
	return &SitesHandler{svc: svc}
}

func (h *SitesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SitesHandler) Create(c *gin.Context) {
	var req dto.CreateSiteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	site, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, dto.SiteCreatedResponse{Message: "Site created", Site: site})
}

func (h *SitesHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "site not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SitesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSiteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "site not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}
