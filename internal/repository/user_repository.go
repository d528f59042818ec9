package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiboard/hiboard-api/internal/dto"
	"github.com/hiboard/hiboard-api/internal/identity"
	"github.com/hiboard/hiboard-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db       *gorm.DB
	identity *identity.Client
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB, identityClient *identity.Client) UserRepository {
	return &GormUserRepository{db: db, identity: identityClient}
}

// ListEmployeesOf returns all non-deleted users whose manager matches,
// annotated with total and completed activity counts.
func (r *GormUserRepository) ListEmployeesOf(ctx context.Context, managerID uint64) ([]dto.UserDTO, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]dto.UserDTO, len(users))
	for i, user := range users {
		userDTO := dto.ToUserDTO(user)
		if err := r.attachActivityCounts(ctx, &userDTO); err != nil {
			return nil, err
		}
		employees[i] = userDTO
	}

	return employees, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	userDTO := dto.ToUserDTO(user)
	return &userDTO, nil
}

// FindByEmail finds a user by email, annotated with activity counts
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*dto.UserDTO, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	userDTO := dto.ToUserDTO(user)
	if err := r.attachActivityCounts(ctx, &userDTO); err != nil {
		return nil, err
	}

	return &userDTO, nil
}

// Create registers the account with the identity provider before persisting
// the local row. A provider failure aborts the operation with no local row.
func (r *GormUserRepository) Create(ctx context.Context, userDTO dto.UserDTO, managerID uint64) (*dto.UserDTO, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", userDTO.Email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrUserAlreadyExists
	}

	if _, err := r.identity.SignUp(ctx, userDTO.Email, userDTO.Password); err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	user := dto.ToUserModel(userDTO)
	user.ID = 0
	if managerID != 0 {
		user.ManagerID = &managerID
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created := dto.ToUserDTO(user)
	return &created, nil
}

// Update propagates credential changes to the identity provider using the
// caller's token, then persists email and name fields. Both provider calls
// must succeed before anything is written locally.
func (r *GormUserRepository) Update(ctx context.Context, id uint64, userDTO dto.UserDTO, idToken string) (*dto.UserDTO, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if userDTO.NewPassword != "" {
		if err := r.identity.UpdatePassword(ctx, idToken, userDTO.NewPassword); err != nil {
			return nil, fmt.Errorf("failed to update password: %w", err)
		}
	}

	if userDTO.Email != "" && userDTO.Email != user.Email {
		if err := r.identity.UpdateEmail(ctx, idToken, userDTO.Email); err != nil {
			return nil, fmt.Errorf("failed to update email: %w", err)
		}
		user.Email = userDTO.Email
	}

	user.FirstName = userDTO.FirstName
	user.LastName = userDTO.LastName

	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	updated := dto.ToUserDTO(user)
	return &updated, nil
}

// Delete soft deletes a user. Related user activities are untouched.
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// attachActivityCounts sets the derived totals on a user DTO.
func (r *GormUserRepository) attachActivityCounts(ctx context.Context, userDTO *dto.UserDTO) error {
	if err := r.db.WithContext(ctx).Model(&models.UserActivity{}).
		Where("user_id = ?", userDTO.ID).
		Count(&userDTO.TotalActivities).Error; err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&models.UserActivity{}).
		Where("user_id = ? AND status = ?", userDTO.ID, models.StatusDone).
		Count(&userDTO.CompletedActivities).Error; err != nil {
		return fmt.Errorf("failed to count completed activities: %w", err)
	}

	return nil
}
