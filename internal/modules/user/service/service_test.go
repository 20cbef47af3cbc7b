package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	"github.com/octofitapp/octofit-tracker/internal/modules/user/dto"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
)

type stubUserRepo struct {
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
	return nil
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var all []*entity.User
	for _, u := range s.byID {
		all = append(all, u)
	}
	return all, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := s.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := s.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmails(ctx context.Context, emails []string) ([]*entity.User, error) {
	var users []*entity.User
	for _, email := range emails {
		if u, ok := s.byEmail[email]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *stubUserRepo) Update(ctx context.Context, u *entity.User) error {
	old, ok := s.byID[u.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.byEmail, old.Email)
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if u, ok := s.byID[id]; ok {
		delete(s.byEmail, u.Email)
		delete(s.byID, id)
	}
	return nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  "Tony Stark",
		Email: "ironman@marvel.com",
		Team:  "Team Marvel",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  "Anthony Stark",
		Email: "ironman@marvel.com",
		Team:  "Team Marvel",
	})
	require.ErrorIs(t, err, apperror.ErrConflict)
}

func TestGetUserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateUserRejectsEmailTakenByAnother(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  "Clark Kent",
		Email: "superman@dc.com",
		Team:  "Team DC",
	})
	require.NoError(t, err)

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  "Bruce Wayne",
		Email: "batman@dc.com",
		Team:  "Team DC",
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), created.ID, dto.UpdateUserRequest{
		Name:  "Bruce Wayne",
		Email: "superman@dc.com",
		Team:  "Team DC",
	})
	require.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUpdateUserKeepingOwnEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  "Diana Prince",
		Email: "wonderwoman@dc.com",
		Team:  "Team DC",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID, dto.UpdateUserRequest{
		Name:  "Diana of Themyscira",
		Email: "wonderwoman@dc.com",
		Team:  "Team DC",
	})
	require.NoError(t, err)
	require.Equal(t, "Diana of Themyscira", updated.Name)
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
