package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octofitapp/octofit-tracker/internal/entity"
)

func TestBuildEntriesRanksByPoints(t *testing.T) {
	activities := []*entity.Activity{
		{UserEmail: "a@example.com", CaloriesBurned: 100, Duration: 30, Distance: 2.0},
		{UserEmail: "a@example.com", CaloriesBurned: 50, Duration: 15, Distance: 0},
		{UserEmail: "b@example.com", CaloriesBurned: 300, Duration: 60, Distance: 0},
	}

	entries := BuildEntries(activities)
	require.Len(t, entries, 2)

	// B: 300 + 10*1 + 0 = 310, A: 150 + 10*2 + 50*2 = 270
	require.Equal(t, "b@example.com", entries[0].UserEmail)
	require.Equal(t, 310, entries[0].TotalPoints)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, 300, entries[0].TotalCalories)
	require.Equal(t, 1, entries[0].TotalActivities)

	require.Equal(t, "a@example.com", entries[1].UserEmail)
	require.Equal(t, 270, entries[1].TotalPoints)
	require.Equal(t, 2, entries[1].Rank)
	require.Equal(t, 150, entries[1].TotalCalories)
	require.Equal(t, 2, entries[1].TotalActivities)
}

func TestSummarizeFloorsDistanceTerm(t *testing.T) {
	activities := []*entity.Activity{
		{UserEmail: "a@example.com", CaloriesBurned: 0, Duration: 10, Distance: 0.03},
	}

	summaries := Summarize(activities)
	require.Len(t, summaries, 1)

	// floor(50 * 0.03) = floor(1.5) = 1
	require.Equal(t, 0+10+1, summaries[0].TotalPoints)
}

func TestSummarizeBreaksTiesByEmail(t *testing.T) {
	activities := []*entity.Activity{
		{UserEmail: "zed@example.com", CaloriesBurned: 100, Duration: 20},
		{UserEmail: "amy@example.com", CaloriesBurned: 100, Duration: 20},
	}

	summaries := Summarize(activities)
	require.Len(t, summaries, 2)
	require.Equal(t, summaries[0].TotalPoints, summaries[1].TotalPoints)
	require.Equal(t, "amy@example.com", summaries[0].UserEmail)
	require.Equal(t, "zed@example.com", summaries[1].UserEmail)
}

func TestBuildEntriesContiguousRanks(t *testing.T) {
	activities := []*entity.Activity{
		{UserEmail: "a@example.com", CaloriesBurned: 500, Duration: 60},
		{UserEmail: "b@example.com", CaloriesBurned: 100, Duration: 20},
		{UserEmail: "b@example.com", CaloriesBurned: 100, Duration: 20},
		{UserEmail: "c@example.com", CaloriesBurned: 100, Duration: 20, Distance: 5},
		{UserEmail: "d@example.com", CaloriesBurned: 900, Duration: 90, Distance: 10},
	}

	entries := BuildEntries(activities)
	require.Len(t, entries, 4)

	for i, entry := range entries {
		require.Equal(t, i+1, entry.Rank)
		if i > 0 {
			require.GreaterOrEqual(t, entries[i-1].TotalPoints, entry.TotalPoints)
		}
	}
}

func TestBuildEntriesEmptyInput(t *testing.T) {
	entries := BuildEntries(nil)
	require.Empty(t, entries)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	activities := []*entity.Activity{
		{UserEmail: "a@example.com", CaloriesBurned: 120, Duration: 30, Distance: 1.2},
		{UserEmail: "b@example.com", CaloriesBurned: 340, Duration: 45},
		{UserEmail: "a@example.com", CaloriesBurned: 80, Duration: 15},
		{UserEmail: "c@example.com", CaloriesBurned: 200, Duration: 25, Distance: 3.4},
	}

	first := Summarize(activities)
	second := Summarize(activities)
	require.Equal(t, first, second)
}
