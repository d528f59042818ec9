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

// GormCompanyRepository is a GORM implementation of CompanyRepository
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

// List retrieves companies with pagination
func (r *GormCompanyRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Company{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var companies []models.Company
	if err := query.Scopes(database.Paginate(params)).Find(&companies).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, total, nil
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uint64) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}

// Create creates a new company
func (r *GormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// Update updates a company
func (r *GormCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// Delete soft deletes a company
func (r *GormCompanyRepository) Delete(ctx context.Context, id uint64) error {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to find company: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&company).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
