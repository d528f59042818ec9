package services

import (
	"context"
	"fmt"

	"github.com/hiboard/hiboard-api/internal/dto"
	"github.com/hiboard/hiboard-api/internal/models"
	"github.com/hiboard/hiboard-api/internal/repository"
)

// UserActivityService handles user-activity business logic
type UserActivityService struct {
	userActivityRepo repository.UserActivityRepository
	templateRepo     repository.TemplateRepository
}

// NewUserActivityService creates a new UserActivityService
func NewUserActivityService(userActivityRepo repository.UserActivityRepository, templateRepo repository.TemplateRepository) *UserActivityService {
	return &UserActivityService{
		userActivityRepo: userActivityRepo,
		templateRepo:     templateRepo,
	}
}

// ListForUser returns all activity assignments of a user
func (s *UserActivityService) ListForUser(ctx context.Context, userID uint64) ([]dto.UserActivityDTO, error) {
	userActivities, err := s.userActivityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserActivityDTO, len(userActivities))
	for i, ua := range userActivities {
		result[i] = dto.ToUserActivityDTO(ua)
	}
	return result, nil
}

// Get returns a single user activity by ID
func (s *UserActivityService) Get(ctx context.Context, id uint64) (*dto.UserActivityDTO, error) {
	ua, err := s.userActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := dto.ToUserActivityDTO(*ua)
	return &result, nil
}

// Create associates a user with an activity in its initial state
func (s *UserActivityService) Create(ctx context.Context, userID uint64, input dto.UserActivityDTO) (*dto.UserActivityDTO, error) {
	ua := dto.ToUserActivityModel(input)
	ua.ID = 0
	ua.UserID = userID

	if err := s.userActivityRepo.Create(ctx, &ua); err != nil {
		return nil, err
	}

	result := dto.ToUserActivityDTO(ua)
	return &result, nil
}

// Patch updates the mutable fields of a user activity. Only fields present
// in the input are touched.
func (s *UserActivityService) Patch(ctx context.Context, id uint64, input dto.UserActivityPatchDTO) (*dto.UserActivityDTO, error) {
	ua, err := s.userActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		ua.Status = *input.Status
	}
	if input.IsOnTime != nil {
		ua.IsOnTime = input.IsOnTime
	}
	if input.StartedWorkedOn != nil {
		ua.StartedWorkedOn = input.StartedWorkedOn
	}
	if input.TimeTookToComplete != nil {
		ua.TimeTookToComplete = *input.TimeTookToComplete
	}

	if err := s.userActivityRepo.Update(ctx, ua); err != nil {
		return nil, err
	}

	result := dto.ToUserActivityDTO(*ua)
	return &result, nil
}

// Delete soft deletes a user activity
func (s *UserActivityService) Delete(ctx context.Context, id uint64) error {
	return s.userActivityRepo.Delete(ctx, id)
}

// AssignTemplate creates one pending assignment per activity in the template
// for the given user. The fan-out is all-or-nothing: a failure on any row
// leaves no assignments behind.
func (s *UserActivityService) AssignTemplate(ctx context.Context, userID, templateID uint64) error {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return err
	}

	assignments := make([]models.UserActivity, len(template.Activities))
	for i, activity := range template.Activities {
		assignments[i] = models.UserActivity{
			ActivityID: activity.ID,
			UserID:     userID,
			Status:     models.StatusPending,
		}
	}

	if err := s.userActivityRepo.CreateBatch(ctx, assignments); err != nil {
		return fmt.Errorf("failed to assign template: %w", err)
	}

	return nil
}
