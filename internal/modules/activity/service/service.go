package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	"github.com/octofitapp/octofit-tracker/internal/modules/activity/dto"
	"github.com/octofitapp/octofit-tracker/internal/modules/activity/repository"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
	"gorm.io/gorm"
)

type ActivityService interface {
	CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetAllActivities(ctx context.Context, filter dto.ActivityFilter) ([]dto.ActivityResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*dto.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	calories := req.CaloriesBurned
	if calories == 0 {
		calories = CaloriesFor(req.ActivityType, req.Duration)
	}

	activity := &entity.Activity{
		UserEmail:      req.UserEmail,
		ActivityType:   req.ActivityType,
		Duration:       req.Duration,
		Distance:       req.Distance,
		CaloriesBurned: calories,
		Date:           req.Date,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return toActivityResponse(activity), nil
}

func (s *activityService) GetAllActivities(ctx context.Context, filter dto.ActivityFilter) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.FindAll(ctx, filter.UserEmail)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, *toActivityResponse(a))
	}
	return responses, nil
}

func (s *activityService) GetActivity(ctx context.Context, id uuid.UUID) (*dto.ActivityResponse, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id uuid.UUID, req dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	activity.UserEmail = req.UserEmail
	activity.ActivityType = req.ActivityType
	activity.Duration = req.Duration
	activity.Distance = req.Distance
	activity.Date = req.Date
	// Calories are fixed at creation; an update only overrides them when the
	// client sends an explicit value.
	if req.CaloriesBurned != 0 {
		activity.CaloriesBurned = req.CaloriesBurned
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return toActivityResponse(activity), nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:             a.ID,
		UserEmail:      a.UserEmail,
		ActivityType:   a.ActivityType,
		Duration:       a.Duration,
		Distance:       a.Distance,
		CaloriesBurned: a.CaloriesBurned,
		Date:           a.Date,
		CreatedAt:      a.CreatedAt,
	}
}
