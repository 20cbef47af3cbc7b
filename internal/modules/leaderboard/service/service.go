package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	activityRepo "github.com/octofitapp/octofit-tracker/internal/modules/activity/repository"
	"github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/dto"
	leaderboardRepo "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/repository"
	userRepo "github.com/octofitapp/octofit-tracker/internal/modules/user/repository"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
)

const (
	recomputeLockKey = "leaderboard:recompute_lock"
	snapshotCacheKey = "leaderboard:snapshot"
)

// ErrRecomputeInProgress is returned when a scoring run is refused because
// another run holds the lock.
var ErrRecomputeInProgress = errors.New("leaderboard recompute already in progress")

type LeaderboardService interface {
	// Recompute rebuilds the whole leaderboard from all stored activities and
	// returns the number of entries written. The replace is transactional:
	// either the full new set is visible or the previous one still is.
	Recompute(ctx context.Context) (int, error)
	GetLeaderboard(ctx context.Context) ([]dto.EntryResponse, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*dto.EntryResponse, error)
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*dto.EntryResponse, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, req dto.UpdateEntryRequest) (*dto.EntryResponse, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

type leaderboardService struct {
	repo          leaderboardRepo.LeaderboardRepository
	activityRepo  activityRepo.ActivityRepository
	userRepo      userRepo.UserRepository
	redisClient   *redis.Client
	cacheTTL      time.Duration
	lockTTL       time.Duration
	recomputeLock sync.Mutex
}

// NewLeaderboardService accepts a nil redis client; the snapshot cache is then
// skipped and run serialization falls back to the in-process lock alone.
func NewLeaderboardService(
	repo leaderboardRepo.LeaderboardRepository,
	activities activityRepo.ActivityRepository,
	users userRepo.UserRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	lockTTL time.Duration,
) LeaderboardService {
	return &leaderboardService{
		repo:         repo,
		activityRepo: activities,
		userRepo:     users,
		redisClient:  redisClient,
		cacheTTL:     cacheTTL,
		lockTTL:      lockTTL,
	}
}

func (s *leaderboardService) Recompute(ctx context.Context) (int, error) {
	if !s.recomputeLock.TryLock() {
		return 0, ErrRecomputeInProgress
	}
	defer s.recomputeLock.Unlock()

	acquired, err := s.acquireRunLock(ctx)
	if err != nil {
		return 0, err
	}
	if !acquired {
		return 0, ErrRecomputeInProgress
	}
	defer s.releaseRunLock()

	activities, err := s.activityRepo.FindAll(ctx, "")
	if err != nil {
		return 0, err
	}

	entries := BuildEntries(activities)

	// Cooperative cancellation point between aggregation and write-back
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := s.repo.ReplaceAll(ctx, entries); err != nil {
		return 0, err
	}

	s.invalidateCache(ctx)
	return len(entries), nil
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]dto.EntryResponse, error) {
	if cached := s.cachedSnapshot(ctx); cached != nil {
		return cached, nil
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses, err := s.resolveEntries(ctx, entries)
	if err != nil {
		return nil, err
	}

	s.cacheSnapshot(ctx, responses)
	return responses, nil
}

func (s *leaderboardService) GetEntry(ctx context.Context, id uuid.UUID) (*dto.EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	resolved, err := s.resolveEntries(ctx, []*entity.LeaderboardEntry{entry})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func (s *leaderboardService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	entry := &entity.LeaderboardEntry{
		UserEmail:       req.UserEmail,
		TotalPoints:     req.TotalPoints,
		TotalCalories:   req.TotalCalories,
		TotalActivities: req.TotalActivities,
		Rank:            req.Rank,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	resolved, err := s.resolveEntries(ctx, []*entity.LeaderboardEntry{entry})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func (s *leaderboardService) UpdateEntry(ctx context.Context, id uuid.UUID, req dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	entry.UserEmail = req.UserEmail
	entry.TotalPoints = req.TotalPoints
	entry.TotalCalories = req.TotalCalories
	entry.TotalActivities = req.TotalActivities
	entry.Rank = req.Rank

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	resolved, err := s.resolveEntries(ctx, []*entity.LeaderboardEntry{entry})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func (s *leaderboardService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// resolveEntries attaches display fields by looking up the current User record
// for each entry's email. Unresolvable references render the raw email and the
// "No Team" sentinel instead of failing.
func (s *leaderboardService) resolveEntries(ctx context.Context, entries []*entity.LeaderboardEntry) ([]dto.EntryResponse, error) {
	emails := make([]string, 0, len(entries))
	for _, e := range entries {
		emails = append(emails, e.UserEmail)
	}

	users, err := s.userRepo.FindByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	userMap := make(map[string]*entity.User, len(users))
	for _, u := range users {
		userMap[u.Email] = u
	}

	responses := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		displayName := e.UserEmail
		team := dto.NoTeamLabel
		if u, ok := userMap[e.UserEmail]; ok {
			displayName = u.Name
			if u.Team != "" {
				team = u.Team
			}
		}

		responses = append(responses, dto.EntryResponse{
			ID:              e.ID,
			UserEmail:       e.UserEmail,
			DisplayName:     displayName,
			Team:            team,
			TotalPoints:     e.TotalPoints,
			TotalCalories:   e.TotalCalories,
			TotalActivities: e.TotalActivities,
			Rank:            e.Rank,
			UpdatedAt:       e.UpdatedAt,
		})
	}

	return responses, nil
}

func (s *leaderboardService) acquireRunLock(ctx context.Context) (bool, error) {
	if s.redisClient == nil {
		return true, nil
	}

	wasSet, err := s.redisClient.SetNX(ctx, recomputeLockKey, "locked", s.lockTTL).Result()
	if err != nil {
		return false, err
	}
	return wasSet, nil
}

func (s *leaderboardService) releaseRunLock() {
	if s.redisClient == nil {
		return
	}

	// Release must run even when the caller's context is already cancelled
	if _, err := s.redisClient.Del(context.Background(), recomputeLockKey).Result(); err != nil {
		log.Printf("Failed to release recompute lock: %v", err)
	}
}

func (s *leaderboardService) cachedSnapshot(ctx context.Context) []dto.EntryResponse {
	if s.redisClient == nil {
		return nil
	}

	cached, err := s.redisClient.Get(ctx, snapshotCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read leaderboard cache: %v", err)
		}
		return nil
	}

	var responses []dto.EntryResponse
	if err := json.Unmarshal([]byte(cached), &responses); err != nil {
		log.Printf("Failed to decode leaderboard cache: %v", err)
		return nil
	}
	return responses
}

func (s *leaderboardService) cacheSnapshot(ctx context.Context, responses []dto.EntryResponse) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		log.Printf("Failed to encode leaderboard cache: %v", err)
		return
	}

	if err := s.redisClient.Set(ctx, snapshotCacheKey, payload, s.cacheTTL).Err(); err != nil {
		log.Printf("Failed to write leaderboard cache: %v", err)
	}
}

func (s *leaderboardService) invalidateCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Del(ctx, snapshotCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate leaderboard cache: %v", err)
	}
}
