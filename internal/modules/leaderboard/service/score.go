package leaderboard

import (
	"math"
	"sort"

	"github.com/octofitapp/octofit-tracker/internal/entity"
)

// Scoring weights. Distance contributes floor(50 * km) so that points stay
// whole numbers.
const (
	PointsPerActivity  = 10
	PointsPerKilometer = 50
)

// Summary is the per-user aggregate computed from raw activities before ranking.
type Summary struct {
	UserEmail       string
	TotalPoints     int
	TotalCalories   int
	TotalActivities int
	TotalDistance   float64
}

// Summarize groups activities by user email, totals each group and returns the
// summaries sorted by points descending. Users with no activities never appear.
// Equal point totals are ordered by user email ascending so that repeated runs
// over the same input produce the same sequence.
func Summarize(activities []*entity.Activity) []Summary {
	totals := make(map[string]*Summary)
	for _, a := range activities {
		s, ok := totals[a.UserEmail]
		if !ok {
			s = &Summary{UserEmail: a.UserEmail}
			totals[a.UserEmail] = s
		}
		s.TotalCalories += a.CaloriesBurned
		s.TotalActivities++
		s.TotalDistance += a.Distance
	}

	summaries := make([]Summary, 0, len(totals))
	for _, s := range totals {
		s.TotalPoints = s.TotalCalories +
			PointsPerActivity*s.TotalActivities +
			int(math.Floor(PointsPerKilometer*s.TotalDistance))
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalPoints != summaries[j].TotalPoints {
			return summaries[i].TotalPoints > summaries[j].TotalPoints
		}
		return summaries[i].UserEmail < summaries[j].UserEmail
	})

	return summaries
}

// BuildEntries converts sorted summaries into leaderboard entries with
// contiguous 1-based ranks.
func BuildEntries(activities []*entity.Activity) []entity.LeaderboardEntry {
	summaries := Summarize(activities)

	entries := make([]entity.LeaderboardEntry, 0, len(summaries))
	for i, s := range summaries {
		entries = append(entries, entity.LeaderboardEntry{
			UserEmail:       s.UserEmail,
			TotalPoints:     s.TotalPoints,
			TotalCalories:   s.TotalCalories,
			TotalActivities: s.TotalActivities,
			Rank:            i + 1,
		})
	}
	return entries
}
