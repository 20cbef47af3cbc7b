package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/octofitapp/octofit-tracker/internal/entity"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(ctx context.Context, workout *entity.Workout) error
	FindAll(ctx context.Context) ([]*entity.Workout, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	Update(ctx context.Context, workout *entity.Workout) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) FindAll(ctx context.Context) ([]*entity.Workout, error) {
	var workouts []*entity.Workout
	if err := r.db.WithContext(ctx).Order("created_at").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	if err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Workout{}, "id = ?", id).Error
}

func (r *workoutRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Workout{}).Count(&count).Error
	return count, err
}
