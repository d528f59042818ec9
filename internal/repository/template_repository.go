package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiboard/hiboard-api/internal/database"
	"github.com/hiboard/hiboard-api/internal/models"
	"github.com/hiboard/hiboard-api/internal/utils"
	"gorm.io/gorm"
)

// GormTemplateRepository is a GORM implementation of TemplateRepository
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &GormTemplateRepository{db: db}
}

// List retrieves templates with filtering and pagination
func (r *GormTemplateRepository) List(ctx context.Context, filter TemplateFilter, params utils.PaginationParams) ([]models.Template, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Template{})

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	var templates []models.Template
	if err := query.Preload("Activities").Scopes(database.Paginate(params)).Find(&templates).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	return templates, total, nil
}

// FindByID finds a template with its activities preloaded
func (r *GormTemplateRepository) FindByID(ctx context.Context, id uint64) (*models.Template, error) {
	var template models.Template
	if err := r.db.WithContext(ctx).Preload("Activities").First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	return &template, nil
}

// Create creates a new template
func (r *GormTemplateRepository) Create(ctx context.Context, template *models.Template) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// Update updates a template
func (r *GormTemplateRepository) Update(ctx context.Context, template *models.Template) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	return nil
}

// Delete soft deletes a template
func (r *GormTemplateRepository) Delete(ctx context.Context, id uint64) error {
	var template models.Template
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to find template: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&template).Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
