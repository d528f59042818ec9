package dto

import (
	"github.com/hiboard/hiboard-api/internal/models"
)

// TemplateDTO represents an activity template in API requests and responses
type TemplateDTO struct {
	ID         uint64        `json:"id"`
	Name       string        `json:"name"`
	Department string        `json:"department"`
	CompanyID  uint64        `json:"company_id"`
	Activities []ActivityDTO `json:"activities,omitempty"`
}

// ToTemplateDTO converts a Template model to TemplateDTO
func ToTemplateDTO(template models.Template) TemplateDTO {
	dto := TemplateDTO{
		ID:         template.ID,
		Name:       template.Name,
		Department: template.Department,
		CompanyID:  template.CompanyID,
	}

	if len(template.Activities) > 0 {
		dto.Activities = make([]ActivityDTO, len(template.Activities))
		for i, activity := range template.Activities {
			dto.Activities[i] = ToActivityDTO(activity)
		}
	}

	return dto
}

// ApplyTemplateDTO copies client-writable fields onto an existing template.
// ID, CompanyID and Department are preserved from the stored record and never
// overwritten by client input.
func ApplyTemplateDTO(template *models.Template, dto TemplateDTO) {
	template.Name = dto.Name
}
