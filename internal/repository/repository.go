package repository

import (
	"context"
	"errors"

	"github.com/hiboard/hiboard-api/internal/dto"
	"github.com/hiboard/hiboard-api/internal/models"
	"github.com/hiboard/hiboard-api/internal/utils"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrUserActivityNotFound = errors.New("user activity not found")
	ErrTemplateNotFound     = errors.New("template not found")
)

// UserRepository defines the interface for user data access. It returns DTOs
// because user reads are annotated with derived activity counts and writes
// involve the external identity provider.
type UserRepository interface {
	// ListEmployeesOf returns all users reporting to the given manager,
	// annotated with activity counts. An empty result is not an error.
	ListEmployeesOf(ctx context.Context, managerID uint64) ([]dto.UserDTO, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*dto.UserDTO, error)

	// FindByEmail finds a user by email, annotated with activity counts
	FindByEmail(ctx context.Context, email string) (*dto.UserDTO, error)

	// Create registers the account with the identity provider, then
	// persists the local row with the given manager
	Create(ctx context.Context, userDTO dto.UserDTO, managerID uint64) (*dto.UserDTO, error)

	// Update propagates credential changes to the identity provider using
	// the caller's token, then persists email and name fields
	Update(ctx context.Context, id uint64, userDTO dto.UserDTO, idToken string) (*dto.UserDTO, error)

	// Delete soft deletes a user
	Delete(ctx context.Context, id uint64) error
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	List(ctx context.Context, params utils.PaginationParams) ([]models.Company, int64, error)
	FindByID(ctx context.Context, id uint64) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uint64) error
}

// ActivityFilter holds filtering options for listing activities
type ActivityFilter struct {
	Week *int
	Tag  *string
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	List(ctx context.Context, filter ActivityFilter, params utils.PaginationParams) ([]models.Activity, int64, error)
	FindByID(ctx context.Context, id uint64) (*models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id uint64) error
}

// UserActivityRepository defines the interface for user-activity data access
type UserActivityRepository interface {
	// ListByUser returns all activity assignments of a user
	ListByUser(ctx context.Context, userID uint64) ([]models.UserActivity, error)

	FindByID(ctx context.Context, id uint64) (*models.UserActivity, error)
	Create(ctx context.Context, ua *models.UserActivity) error

	// CreateBatch inserts all assignments in one transaction; either every
	// row is created or none are
	CreateBatch(ctx context.Context, uas []models.UserActivity) error

	Update(ctx context.Context, ua *models.UserActivity) error
	Delete(ctx context.Context, id uint64) error
}

// TemplateFilter holds filtering options for listing templates
type TemplateFilter struct {
	CompanyID  *uint64
	Department *string
}

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	List(ctx context.Context, filter TemplateFilter, params utils.PaginationParams) ([]models.Template, int64, error)

	// FindByID finds a template with its activities preloaded
	FindByID(ctx context.Context, id uint64) (*models.Template, error)

	Create(ctx context.Context, template *models.Template) error
	Update(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, id uint64) error
}
