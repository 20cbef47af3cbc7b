package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/octofitapp/octofit-tracker/internal/entity"
	leaderboard "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/service"
)

type userSeed struct {
	Name  string
	Email string
	Team  string
}

var marvelUsers = []userSeed{
	{Name: "Tony Stark", Email: "ironman@marvel.com", Team: "Team Marvel"},
	{Name: "Steve Rogers", Email: "captainamerica@marvel.com", Team: "Team Marvel"},
	{Name: "Thor Odinson", Email: "thor@marvel.com", Team: "Team Marvel"},
	{Name: "Bruce Banner", Email: "hulk@marvel.com", Team: "Team Marvel"},
	{Name: "Natasha Romanoff", Email: "blackwidow@marvel.com", Team: "Team Marvel"},
	{Name: "Peter Parker", Email: "spiderman@marvel.com", Team: "Team Marvel"},
}

var dcUsers = []userSeed{
	{Name: "Bruce Wayne", Email: "batman@dc.com", Team: "Team DC"},
	{Name: "Clark Kent", Email: "superman@dc.com", Team: "Team DC"},
	{Name: "Diana Prince", Email: "wonderwoman@dc.com", Team: "Team DC"},
	{Name: "Barry Allen", Email: "flash@dc.com", Team: "Team DC"},
	{Name: "Arthur Curry", Email: "aquaman@dc.com", Team: "Team DC"},
	{Name: "Hal Jordan", Email: "greenlantern@dc.com", Team: "Team DC"},
}

var workouts = []entity.Workout{
	{Name: "Super Soldier Training", Description: "High-intensity workout designed by Captain America", Difficulty: "Hard", Duration: 60, CaloriesEstimate: 800},
	{Name: "Asgardian Warrior Routine", Description: "Thor's legendary strength training", Difficulty: "Extreme", Duration: 90, CaloriesEstimate: 1200},
	{Name: "Spider-Sense Agility", Description: "Web-slinger's agility and flexibility workout", Difficulty: "Medium", Duration: 45, CaloriesEstimate: 600},
	{Name: "Bat-Training", Description: "Batman's dark knight conditioning", Difficulty: "Hard", Duration: 75, CaloriesEstimate: 950},
	{Name: "Kryptonian Power Workout", Description: "Superman's strength and endurance training", Difficulty: "Extreme", Duration: 120, CaloriesEstimate: 1500},
	{Name: "Amazonian Combat Training", Description: "Wonder Woman's warrior workout", Difficulty: "Hard", Duration: 60, CaloriesEstimate: 850},
	{Name: "Speed Force Cardio", Description: "Flash's lightning-fast cardio routine", Difficulty: "Medium", Duration: 30, CaloriesEstimate: 700},
}

var activityTypes = []string{
	"Running", "Swimming", "Cycling", "Weight Training",
	"Boxing", "Yoga", "CrossFit", "Martial Arts",
}

// Approximate pace in km per minute for distance-bearing activity types.
var paceKmPerMinute = map[string]float64{
	"Running":  0.15,
	"Swimming": 0.04,
	"Cycling":  0.40,
}

// Run wipes the five collections, loads the sample roster and recomputes the
// leaderboard.
func Run(ctx context.Context, db *gorm.DB, lb leaderboard.LeaderboardService) error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&entity.User{}, &entity.Team{}, &entity.Activity{},
		&entity.LeaderboardEntry{}, &entity.Workout{},
	} {
		if err := db.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}

	log.Println("Creating teams...")
	teams := []entity.Team{
		{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"},
		{Name: "Team DC", Description: "Justice League Champions"},
	}
	for i := range teams {
		if err := db.WithContext(ctx).Create(&teams[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Creating users...")
	var users []entity.User
	for _, seed := range append(append([]userSeed{}, marvelUsers...), dcUsers...) {
		user := entity.User{Name: seed.Name, Email: seed.Email, Team: seed.Team}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}

	log.Println("Creating workouts...")
	for i := range workouts {
		workout := workouts[i]
		workout.ID = uuid.Nil
		if err := db.WithContext(ctx).Create(&workout).Error; err != nil {
			return err
		}
	}

	log.Println("Creating activities...")
	activityCount := 0
	for _, user := range users {
		numActivities := 5 + rand.Intn(6)
		for i := 0; i < numActivities; i++ {
			daysAgo := rand.Intn(31)
			duration := 20 + rand.Intn(101)
			activityType := activityTypes[rand.Intn(len(activityTypes))]

			var distance float64
			if pace, ok := paceKmPerMinute[activityType]; ok {
				distance = pace * float64(duration)
			}

			activity := entity.Activity{
				UserEmail:      user.Email,
				ActivityType:   activityType,
				Duration:       duration,
				Distance:       distance,
				CaloriesBurned: duration * (8 + rand.Intn(8)),
				Date:           time.Now().AddDate(0, 0, -daysAgo),
			}
			if err := db.WithContext(ctx).Create(&activity).Error; err != nil {
				return err
			}
			activityCount++
		}
	}

	log.Println("Computing leaderboard...")
	entryCount, err := lb.Recompute(ctx)
	if err != nil {
		return fmt.Errorf("failed to recompute leaderboard: %w", err)
	}

	log.Println("✅ Successfully populated the database!")
	log.Printf("   Created %d users", len(users))
	log.Printf("   Created %d teams", len(teams))
	log.Printf("   Created %d activities", activityCount)
	log.Printf("   Created %d workouts", len(workouts))
	log.Printf("   Created %d leaderboard entries", entryCount)

	return nil
}
