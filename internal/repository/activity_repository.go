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

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// List retrieves activities with filtering and pagination
func (r *GormActivityRepository) List(ctx context.Context, filter ActivityFilter, params utils.PaginationParams) ([]models.Activity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Activity{})

	if filter.Week != nil {
		query = query.Where("week = ?", *filter.Week)
	}
	if filter.Tag != nil {
		query = query.Where("tag = ?", *filter.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	var activities []models.Activity
	if err := query.Order("week ASC").Scopes(database.Paginate(params)).Find(&activities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, total, nil
}

// FindByID finds an activity by ID
func (r *GormActivityRepository) FindByID(ctx context.Context, id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	return &activity, nil
}

// Create creates a new activity
func (r *GormActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update updates an activity
func (r *GormActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// Delete soft deletes an activity
func (r *GormActivityRepository) Delete(ctx context.Context, id uint64) error {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("failed to find activity: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&activity).Error; err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
