package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// ActivityService handles activity business logic
type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repositories.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ActivityInput represents activity create/update input (full replace)
type ActivityInput struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Meeting Seminar Training Event Assembly Other"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location"`
}

func (s *ActivityService) toModel(input *ActivityInput) (*models.Activity, error) {
	ve := &domain.ValidationErrors{}
	start := parseDateTime("start_time", input.StartTime, ve)
	end := parseDateTime("end_time", input.EndTime, ve)

	if !ve.HasErrors() && end.Before(start) {
		ve.Add("end_time", "end_time must not be before start_time")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	return &models.Activity{
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    input.Location,
	}, nil
}

// Create creates a new activity
func (s *ActivityService) Create(ctx context.Context, input *ActivityInput) (*models.Activity, error) {
	activity, err := s.toModel(input)
	if err != nil {
		return nil, err
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// GetByID gets an activity by ID
func (s *ActivityService) GetByID(ctx context.Context, id uint) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

// Update fully replaces the mutable fields of an activity
func (s *ActivityService) Update(ctx context.Context, id uint, input *ActivityInput) (*models.Activity, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity, err := s.toModel(input)
	if err != nil {
		return nil, err
	}
	activity.ID = existing.ID
	activity.CreatedAt = existing.CreatedAt

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete deletes an activity. Fails with a conflict while attendance rows
// reference it.
func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	err := s.activityRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrActivityNotFound
	}
	return err
}

// List lists all activities, newest first
func (s *ActivityService) List(ctx context.Context) ([]*models.Activity, error) {
	return s.activityRepo.List(ctx)
}
