package workout

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	search "github.com/octofitapp/octofit-tracker/internal/modules/search/service"
	"github.com/octofitapp/octofit-tracker/internal/modules/workout/dto"
	"github.com/octofitapp/octofit-tracker/internal/modules/workout/repository"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
	"gorm.io/gorm"
)

const defaultSearchLimit = 20

type WorkoutService interface {
	CreateWorkout(ctx context.Context, req dto.CreateWorkoutRequest) (*dto.WorkoutResponse, error)
	GetAllWorkouts(ctx context.Context) ([]dto.WorkoutResponse, error)
	GetWorkout(ctx context.Context, id uuid.UUID) (*dto.WorkoutResponse, error)
	UpdateWorkout(ctx context.Context, id uuid.UUID, req dto.UpdateWorkoutRequest) (*dto.WorkoutResponse, error)
	DeleteWorkout(ctx context.Context, id uuid.UUID) error
	SearchWorkouts(ctx context.Context, filter dto.SearchWorkoutFilter) ([]search.WorkoutDocument, error)
}

type workoutService struct {
	repo   repository.WorkoutRepository
	search search.SearchService
}

func NewWorkoutService(repo repository.WorkoutRepository, searchSvc search.SearchService) WorkoutService {
	return &workoutService{repo: repo, search: searchSvc}
}

func (s *workoutService) CreateWorkout(ctx context.Context, req dto.CreateWorkoutRequest) (*dto.WorkoutResponse, error) {
	workout := &entity.Workout{
		Name:             req.Name,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		CaloriesEstimate: req.CaloriesEstimate,
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	// Indexing failures must not fail the write
	if err := s.search.IndexWorkout(workout); err != nil {
		log.Printf("Failed to index workout %s: %v", workout.ID, err)
	}

	return toWorkoutResponse(workout), nil
}

func (s *workoutService) GetAllWorkouts(ctx context.Context) ([]dto.WorkoutResponse, error) {
	workouts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		responses = append(responses, *toWorkoutResponse(w))
	}
	return responses, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id uuid.UUID) (*dto.WorkoutResponse, error) {
	workout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return toWorkoutResponse(workout), nil
}

func (s *workoutService) UpdateWorkout(ctx context.Context, id uuid.UUID, req dto.UpdateWorkoutRequest) (*dto.WorkoutResponse, error) {
	workout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	workout.Name = req.Name
	workout.Description = req.Description
	workout.Difficulty = req.Difficulty
	workout.Duration = req.Duration
	workout.CaloriesEstimate = req.CaloriesEstimate

	if err := s.repo.Update(ctx, workout); err != nil {
		return nil, err
	}

	if err := s.search.IndexWorkout(workout); err != nil {
		log.Printf("Failed to reindex workout %s: %v", workout.ID, err)
	}

	return toWorkoutResponse(workout), nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.search.DeleteWorkout(id.String()); err != nil {
		log.Printf("Failed to remove workout %s from index: %v", id, err)
	}

	return nil
}

func (s *workoutService) SearchWorkouts(ctx context.Context, filter dto.SearchWorkoutFilter) ([]search.WorkoutDocument, error) {
	limit := filter.Limit
	if limit < 1 || limit > 50 {
		limit = defaultSearchLimit
	}

	return s.search.SearchWorkouts(filter.Query, limit)
}

func toWorkoutResponse(w *entity.Workout) *dto.WorkoutResponse {
	return &dto.WorkoutResponse{
		ID:               w.ID,
		Name:             w.Name,
		Description:      w.Description,
		Difficulty:       w.Difficulty,
		Duration:         w.Duration,
		CaloriesEstimate: w.CaloriesEstimate,
		CreatedAt:        w.CreatedAt,
	}
}
