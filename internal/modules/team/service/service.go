package team

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	"github.com/octofitapp/octofit-tracker/internal/modules/team/dto"
	"github.com/octofitapp/octofit-tracker/internal/modules/team/repository"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
	"gorm.io/gorm"
)

type TeamService interface {
	CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetAllTeams(ctx context.Context) ([]dto.TeamResponse, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type teamService struct {
	repo repository.TeamRepository
}

func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	team := &entity.Team{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

func (s *teamService) GetAllTeams(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, *toTeamResponse(t))
	}
	return responses, nil
}

func (s *teamService) GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id uuid.UUID, req dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	team.Name = req.Name
	team.Description = req.Description

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
