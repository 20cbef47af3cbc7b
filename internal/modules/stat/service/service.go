package service

import (
	"context"

	activityRepo "github.com/octofitapp/octofit-tracker/internal/modules/activity/repository"
	leaderboardRepo "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/repository"
	teamRepo "github.com/octofitapp/octofit-tracker/internal/modules/team/repository"
	userRepo "github.com/octofitapp/octofit-tracker/internal/modules/user/repository"
	workoutRepo "github.com/octofitapp/octofit-tracker/internal/modules/workout/repository"
)

type Stats struct {
	Users              int64 `json:"users"`
	Teams              int64 `json:"teams"`
	Activities         int64 `json:"activities"`
	Workouts           int64 `json:"workouts"`
	LeaderboardEntries int64 `json:"leaderboard_entries"`
}

type StatService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statService struct {
	users       userRepo.UserRepository
	teams       teamRepo.TeamRepository
	activities  activityRepo.ActivityRepository
	workouts    workoutRepo.WorkoutRepository
	leaderboard leaderboardRepo.LeaderboardRepository
}

func NewStatService(
	users userRepo.UserRepository,
	teams teamRepo.TeamRepository,
	activities activityRepo.ActivityRepository,
	workouts workoutRepo.WorkoutRepository,
	leaderboard leaderboardRepo.LeaderboardRepository,
) StatService {
	return &statService{
		users:       users,
		teams:       teams,
		activities:  activities,
		workouts:    workouts,
		leaderboard: leaderboard,
	}
}

func (s *statService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	var err error

	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Teams, err = s.teams.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Activities, err = s.activities.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Workouts, err = s.workouts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.LeaderboardEntries, err = s.leaderboard.Count(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}
