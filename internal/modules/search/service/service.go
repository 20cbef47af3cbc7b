package search

import (
	"encoding/json"
	"log"

	"github.com/meilisearch/meilisearch-go"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	"github.com/octofitapp/octofit-tracker/pkg/apperror"
)

const workoutIndex = "workouts"

// WorkoutDocument is the searchable projection of a workout.
type WorkoutDocument struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Difficulty       string `json:"difficulty"`
	Duration         int    `json:"duration"`
	CaloriesEstimate int    `json:"calories_estimate"`
}

type SearchService interface {
	IndexWorkout(workout *entity.Workout) error
	DeleteWorkout(id string) error
	SearchWorkouts(query string, limit int) ([]WorkoutDocument, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

// NewSearchService accepts a nil client; indexing becomes a no-op and searches
// report the service as unavailable.
func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	if s.client == nil {
		return
	}

	searchableAttrs := []string{"name", "description", "difficulty"}
	if _, err := s.client.Index(workoutIndex).UpdateSearchableAttributes(&searchableAttrs); err != nil {
		log.Printf("Failed to update workouts searchable attributes: %v", err)
	}

	sortableAttrs := []string{"calories_estimate", "duration"}
	if _, err := s.client.Index(workoutIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update workouts sortable attributes: %v", err)
	}
}

func (s *searchService) IndexWorkout(workout *entity.Workout) error {
	if s.client == nil {
		return nil
	}

	doc := WorkoutDocument{
		ID:               workout.ID.String(),
		Name:             workout.Name,
		Description:      workout.Description,
		Difficulty:       workout.Difficulty,
		Duration:         workout.Duration,
		CaloriesEstimate: workout.CaloriesEstimate,
	}

	_, err := s.client.Index(workoutIndex).AddDocuments([]WorkoutDocument{doc}, strPtr("id"))
	return err
}

func strPtr(s string) *string {
	return &s
}

func (s *searchService) DeleteWorkout(id string) error {
	if s.client == nil {
		return nil
	}

	_, err := s.client.Index(workoutIndex).DeleteDocument(id)
	return err
}

func (s *searchService) SearchWorkouts(query string, limit int) ([]WorkoutDocument, error) {
	if s.client == nil {
		return nil, apperror.ErrUnavailable
	}

	resp, err := s.client.Index(workoutIndex).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}

	var docs []WorkoutDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
