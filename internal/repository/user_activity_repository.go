package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiboard/hiboard-api/internal/models"
	"gorm.io/gorm"
)

// GormUserActivityRepository is a GORM implementation of UserActivityRepository
type GormUserActivityRepository struct {
	db *gorm.DB
}

// NewUserActivityRepository creates a new UserActivityRepository
func NewUserActivityRepository(db *gorm.DB) UserActivityRepository {
	return &GormUserActivityRepository{db: db}
}

// ListByUser returns all activity assignments of a user
func (r *GormUserActivityRepository) ListByUser(ctx context.Context, userID uint64) ([]models.UserActivity, error) {
	var userActivities []models.UserActivity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&userActivities).Error; err != nil {
		return nil, fmt.Errorf("failed to list user activities: %w", err)
	}
	return userActivities, nil
}

// FindByID finds a user activity by ID
func (r *GormUserActivityRepository) FindByID(ctx context.Context, id uint64) (*models.UserActivity, error) {
	var ua models.UserActivity
	if err := r.db.WithContext(ctx).First(&ua, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserActivityNotFound
		}
		return nil, fmt.Errorf("failed to find user activity: %w", err)
	}
	return &ua, nil
}

// Create creates a new user activity
func (r *GormUserActivityRepository) Create(ctx context.Context, ua *models.UserActivity) error {
	if err := r.db.WithContext(ctx).Create(ua).Error; err != nil {
		return fmt.Errorf("failed to create user activity: %w", err)
	}
	return nil
}

// CreateBatch inserts all assignments in one transaction
func (r *GormUserActivityRepository) CreateBatch(ctx context.Context, uas []models.UserActivity) error {
	if len(uas) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&uas).Error; err != nil {
			return fmt.Errorf("failed to create user activities: %w", err)
		}
		return nil
	})
}

// Update updates a user activity
func (r *GormUserActivityRepository) Update(ctx context.Context, ua *models.UserActivity) error {
	if err := r.db.WithContext(ctx).Save(ua).Error; err != nil {
		return fmt.Errorf("failed to update user activity: %w", err)
	}
	return nil
}

// Delete soft deletes a user activity
func (r *GormUserActivityRepository) Delete(ctx context.Context, id uint64) error {
	var ua models.UserActivity
	if err := r.db.WithContext(ctx).First(&ua, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserActivityNotFound
		}
		return fmt.Errorf("failed to find user activity: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&ua).Error; err != nil {
		return fmt.Errorf("failed to delete user activity: %w", err)
	}
	return nil
}
