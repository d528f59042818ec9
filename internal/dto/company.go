package dto

import (
	"github.com/hiboard/hiboard-api/internal/models"
)

// CompanyDTO represents a company in API requests and responses
type CompanyDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name" binding:"omitempty,max=150"`
	Description string   `json:"description" binding:"omitempty,max=4000"`
	Admin       string   `json:"admin" binding:"omitempty,max=50"`
	Departments []string `json:"departments"`
}

// ToCompanyDTO converts a Company model to CompanyDTO
func ToCompanyDTO(company models.Company) CompanyDTO {
	return CompanyDTO{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		Admin:       company.Admin,
		Departments: company.Departments,
	}
}

// ToCompanyModel converts a CompanyDTO to a Company model
func ToCompanyModel(dto CompanyDTO) models.Company {
	return models.Company{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Admin:       dto.Admin,
		Departments: dto.Departments,
	}
}
