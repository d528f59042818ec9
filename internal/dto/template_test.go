package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiboard/hiboard-api/internal/models"
)

func TestApplyTemplateDTO_OnlyRenames(t *testing.T) {
	template := models.Template{
		ID:         4,
		Name:       "Old name",
		Department: "Engineering",
		CompanyID:  2,
	}

	ApplyTemplateDTO(&template, TemplateDTO{
		ID:         99,
		Name:       "New name",
		Department: "Sales",
		CompanyID:  77,
	})

	assert.Equal(t, "New name", template.Name)
	assert.Equal(t, uint64(4), template.ID)
	assert.Equal(t, "Engineering", template.Department)
	assert.Equal(t, uint64(2), template.CompanyID)
}

func TestToTemplateDTO_IncludesActivities(t *testing.T) {
	template := models.Template{
		ID:        4,
		Name:      "Onboarding",
		CompanyID: 2,
		Activities: []models.Activity{
			{ID: 1, Title: "Setup laptop"},
			{ID: 2, Title: "Read handbook"},
		},
	}

	dto := ToTemplateDTO(template)

	assert.Len(t, dto.Activities, 2)
	assert.Equal(t, "Setup laptop", dto.Activities[0].Title)
}

func TestToTemplateDTO_EmptyActivitiesOmitted(t *testing.T) {
	dto := ToTemplateDTO(models.Template{ID: 4, Name: "Empty"})

	assert.Nil(t, dto.Activities)
}
