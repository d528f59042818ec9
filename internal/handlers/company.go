package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/dto"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/repository"
	"github.com/hiboard/hiboard-api/internal/utils"
)

// CompanyHandler serves the /api/companies routes.
type CompanyHandler struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyRepo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo}
}

// ListCompanies returns companies with pagination
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	companies, total, err := h.companyRepo.List(c.Request.Context(), params)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	companyDTOs := make([]dto.CompanyDTO, len(companies))
	for i, company := range companies {
		companyDTOs[i] = dto.ToCompanyDTO(company)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": companyDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetCompany returns a company by ID
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, err := parseIDParam(c, "companyId")
	if err != nil {
		return
	}

	company, err := h.companyRepo.FindByID(c.Request.Context(), companyID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToCompanyDTO(*company))
}

// CreateCompany creates a new company
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CompanyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		apierrors.BadRequest(c, "name is required")
		return
	}

	company := dto.ToCompanyModel(req)
	company.ID = 0

	if err := h.companyRepo.Create(c.Request.Context(), &company); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToCompanyDTO(company))
}

// UpdateCompany updates the writable fields of a company
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	companyID, err := parseIDParam(c, "companyId")
	if err != nil {
		return
	}

	var req dto.CompanyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyRepo.FindByID(c.Request.Context(), companyID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	company.Description = req.Description
	company.Admin = req.Admin
	if req.Departments != nil {
		company.Departments = req.Departments
	}

	if err := h.companyRepo.Update(c.Request.Context(), company); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToCompanyDTO(*company))
}

// DeleteCompany soft deletes a company
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	companyID, err := parseIDParam(c, "companyId")
	if err != nil {
		return
	}

	if err := h.companyRepo.Delete(c.Request.Context(), companyID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
