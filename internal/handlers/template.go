package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/dto"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/models"
	"github.com/hiboard/hiboard-api/internal/repository"
	"github.com/hiboard/hiboard-api/internal/utils"
)

// TemplateHandler serves the /api/templates routes.
type TemplateHandler struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templateRepo repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

// ListTemplates returns templates, optionally filtered by company or
// department
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var filter repository.TemplateFilter
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid company_id")
			return
		}
		filter.CompanyID = &companyID
	}
	if department := c.Query("department"); department != "" {
		filter.Department = &department
	}

	templates, total, err := h.templateRepo.List(c.Request.Context(), filter, params)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	templateDTOs := make([]dto.TemplateDTO, len(templates))
	for i, template := range templates {
		templateDTOs[i] = dto.ToTemplateDTO(template)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": templateDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTemplate returns a template with its activities
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	templateID, err := parseIDParam(c, "templateId")
	if err != nil {
		return
	}

	template, err := h.templateRepo.FindByID(c.Request.Context(), templateID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToTemplateDTO(*template))
}

// CreateTemplate creates a new template
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.TemplateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		apierrors.BadRequest(c, "name is required")
		return
	}

	template := models.Template{
		Name:       req.Name,
		Department: req.Department,
		CompanyID:  req.CompanyID,
	}

	if err := h.templateRepo.Create(c.Request.Context(), &template); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToTemplateDTO(template))
}

// UpdateTemplate applies client-writable fields onto a template. ID,
// company and department are preserved from the stored record.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, err := parseIDParam(c, "templateId")
	if err != nil {
		return
	}

	var req dto.TemplateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateRepo.FindByID(c.Request.Context(), templateID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	dto.ApplyTemplateDTO(template, req)

	if err := h.templateRepo.Update(c.Request.Context(), template); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToTemplateDTO(*template))
}

// DeleteTemplate soft deletes a template
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID, err := parseIDParam(c, "templateId")
	if err != nil {
		return
	}

	if err := h.templateRepo.Delete(c.Request.Context(), templateID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
