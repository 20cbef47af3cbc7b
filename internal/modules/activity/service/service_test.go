package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	"github.com/octofitapp/octofit-tracker/internal/modules/activity/dto"
)

type stubActivityRepo struct {
	byID    map[uuid.UUID]*entity.Activity
	created []*entity.Activity
	updated []*entity.Activity
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{byID: make(map[uuid.UUID]*entity.Activity)}
}

func (s *stubActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.byID[a.ID] = a
	s.created = append(s.created, a)
	return nil
}

func (s *stubActivityRepo) FindAll(ctx context.Context, userEmail string) ([]*entity.Activity, error) {
	var all []*entity.Activity
	for _, a := range s.byID {
		if userEmail == "" || a.UserEmail == userEmail {
			all = append(all, a)
		}
	}
	return all, nil
}

func (s *stubActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	if a, ok := s.byID[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubActivityRepo) Update(ctx context.Context, a *entity.Activity) error {
	s.byID[a.ID] = a
	s.updated = append(s.updated, a)
	return nil
}

func (s *stubActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *stubActivityRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

func TestCreateActivityDerivesCalories(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	created, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserEmail:    "ironman@marvel.com",
		ActivityType: "Running",
		Duration:     30,
		Distance:     5.0,
		Date:         time.Now(),
	})
	require.NoError(t, err)

	// Running burns 12 kcal/min
	require.Equal(t, 360, created.CaloriesBurned)
}

func TestCreateActivityKeepsClientCalories(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	created, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserEmail:      "ironman@marvel.com",
		ActivityType:   "Running",
		Duration:       30,
		CaloriesBurned: 250,
		Date:           time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, 250, created.CaloriesBurned)
}

func TestCreateActivityUnknownTypeUsesDefaultRate(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	created, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserEmail:    "batman@dc.com",
		ActivityType: "Grappling",
		Duration:     45,
		Date:         time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, 45*8, created.CaloriesBurned)
}

func TestCreateActivityDefaultsDistanceToZero(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	created, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserEmail:    "hulk@marvel.com",
		ActivityType: "Weight Training",
		Duration:     60,
		Date:         time.Now(),
	})
	require.NoError(t, err)
	require.Zero(t, created.Distance)
}

func TestUpdateActivityDoesNotRecomputeCalories(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	created, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserEmail:    "thor@marvel.com",
		ActivityType: "Running",
		Duration:     30,
		Date:         time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, 360, created.CaloriesBurned)

	// Doubling the duration must not re-derive the calorie value
	updated, err := svc.UpdateActivity(context.Background(), created.ID, dto.UpdateActivityRequest{
		UserEmail:    "thor@marvel.com",
		ActivityType: "Running",
		Duration:     60,
		Date:         time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, 360, updated.CaloriesBurned)
}

func TestGetActivityNotFound(t *testing.T) {
	repo := newStubActivityRepo()
	svc := NewActivityService(repo)

	_, err := svc.GetActivity(context.Background(), uuid.New())
	require.Error(t, err)
}
