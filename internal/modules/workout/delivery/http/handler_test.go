package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	search "github.com/octofitapp/octofit-tracker/internal/modules/search/service"
	"github.com/octofitapp/octofit-tracker/internal/modules/workout/dto"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
)

type stubWorkoutService struct {
	workouts  []dto.WorkoutResponse
	docs      []search.WorkoutDocument
	searchErr error
}

func (s *stubWorkoutService) CreateWorkout(ctx context.Context, req dto.CreateWorkoutRequest) (*dto.WorkoutResponse, error) {
	created := dto.WorkoutResponse{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		CaloriesEstimate: req.CaloriesEstimate,
	}
	s.workouts = append(s.workouts, created)
	return &created, nil
}

func (s *stubWorkoutService) GetAllWorkouts(ctx context.Context) ([]dto.WorkoutResponse, error) {
	return s.workouts, nil
}

func (s *stubWorkoutService) GetWorkout(ctx context.Context, id uuid.UUID) (*dto.WorkoutResponse, error) {
	for _, w := range s.workouts {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (s *stubWorkoutService) UpdateWorkout(ctx context.Context, id uuid.UUID, req dto.UpdateWorkoutRequest) (*dto.WorkoutResponse, error) {
	return nil, apperror.ErrNotFound
}

func (s *stubWorkoutService) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	return apperror.ErrNotFound
}

func (s *stubWorkoutService) SearchWorkouts(ctx context.Context, filter dto.SearchWorkoutFilter) ([]search.WorkoutDocument, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.docs, nil
}

func setupRouter(svc *stubWorkoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewWorkoutHandler(svc)

	r := gin.New()
	workouts := r.Group("/api/workouts")
	{
		workouts.GET("", handler.GetAllWorkouts)
		workouts.POST("", handler.CreateWorkout)
		workouts.GET("/search", handler.SearchWorkouts)
		workouts.GET("/:id", handler.GetWorkout)
		workouts.PUT("/:id", handler.UpdateWorkout)
		workouts.DELETE("/:id", handler.DeleteWorkout)
	}
	return r
}

func TestGetAllWorkouts(t *testing.T) {
	svc := &stubWorkoutService{workouts: []dto.WorkoutResponse{
		{ID: uuid.New(), Name: "Super Soldier Circuit", Difficulty: "Advanced", Duration: 60, CaloriesEstimate: 700},
	}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []dto.WorkoutResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Super Soldier Circuit", body.Data[0].Name)
}

func TestCreateWorkout(t *testing.T) {
	svc := &stubWorkoutService{}
	router := setupRouter(svc)

	payload := `{"name":"Speed Force Sprints","description":"Interval sprints","difficulty":"Intermediate","duration":30,"calories_estimate":450}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/workouts", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.workouts, 1)
}

func TestCreateWorkoutRejectsMissingFields(t *testing.T) {
	svc := &stubWorkoutService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/workouts", strings.NewReader(`{"name":"Incomplete"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, svc.workouts)
}

func TestGetWorkoutInvalidID(t *testing.T) {
	router := setupRouter(&stubWorkoutService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWorkoutNotFound(t *testing.T) {
	router := setupRouter(&stubWorkoutService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchWorkouts(t *testing.T) {
	svc := &stubWorkoutService{docs: []search.WorkoutDocument{
		{ID: uuid.NewString(), Name: "Amazonian Warrior Training", Difficulty: "Advanced"},
	}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/search?q=warrior", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []search.WorkoutDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
}

func TestSearchWorkoutsUnavailable(t *testing.T) {
	svc := &stubWorkoutService{searchErr: apperror.ErrUnavailable}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/search?q=warrior", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
