package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/octofitapp/octofit-tracker/internal/entity"
	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	FindAll(ctx context.Context) ([]*entity.Team, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *entity.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) FindAll(ctx context.Context) ([]*entity.Team, error) {
	var teams []*entity.Team
	if err := r.db.WithContext(ctx).Order("created_at").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var team entity.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Update(ctx context.Context, team *entity.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Team{}, "id = ?", id).Error
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Team{}).Count(&count).Error
	return count, err
}
