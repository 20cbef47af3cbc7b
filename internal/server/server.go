package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/octofitapp/octofit-tracker/internal/config"

	activityHttp "github.com/octofitapp/octofit-tracker/internal/modules/activity/delivery/http"
	activityRepo "github.com/octofitapp/octofit-tracker/internal/modules/activity/repository"
	activityService "github.com/octofitapp/octofit-tracker/internal/modules/activity/service"

	leaderboardHttp "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/repository"
	leaderboardService "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/service"

	searchService "github.com/octofitapp/octofit-tracker/internal/modules/search/service"

	statHttp "github.com/octofitapp/octofit-tracker/internal/modules/stat/delivery/http"
	statService "github.com/octofitapp/octofit-tracker/internal/modules/stat/service"

	teamHttp "github.com/octofitapp/octofit-tracker/internal/modules/team/delivery/http"
	teamRepo "github.com/octofitapp/octofit-tracker/internal/modules/team/repository"
	teamService "github.com/octofitapp/octofit-tracker/internal/modules/team/service"

	userHttp "github.com/octofitapp/octofit-tracker/internal/modules/user/delivery/http"
	userRepo "github.com/octofitapp/octofit-tracker/internal/modules/user/repository"
	userService "github.com/octofitapp/octofit-tracker/internal/modules/user/service"

	workoutHttp "github.com/octofitapp/octofit-tracker/internal/modules/workout/delivery/http"
	workoutRepo "github.com/octofitapp/octofit-tracker/internal/modules/workout/repository"
	workoutService "github.com/octofitapp/octofit-tracker/internal/modules/workout/service"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)
	userSvc := userService.NewUserService(users)
	userHandler := userHttp.NewUserHandler(userSvc)

	teams := teamRepo.NewTeamRepository(db)
	teamSvc := teamService.NewTeamService(teams)
	teamHandler := teamHttp.NewTeamHandler(teamSvc)

	activities := activityRepo.NewActivityRepository(db)
	activitySvc := activityService.NewActivityService(activities)
	activityHandler := activityHttp.NewActivityHandler(activitySvc)

	meiliClient := meilisearch.New(meiliHost(cfg.MeiliSearchHost), meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := searchService.NewSearchService(meiliClient)

	workouts := workoutRepo.NewWorkoutRepository(db)
	workoutSvc := workoutService.NewWorkoutService(workouts, searchSvc)
	workoutHandler := workoutHttp.NewWorkoutHandler(workoutSvc)

	leaderboard := leaderboardRepo.NewLeaderboardRepository(db)
	leaderboardSvc := leaderboardService.NewLeaderboardService(
		leaderboard, activities, users, redisClient, cfg.LeaderboardCacheTTL, cfg.RecomputeLockTTL)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	statSvc := statService.NewStatService(users, teams, activities, workouts, leaderboard)
	statHandler := statHttp.NewStatHandler(statSvc)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")
	{
		api.GET("/users", userHandler.GetAllUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)

		api.GET("/teams", teamHandler.GetAllTeams)
		api.POST("/teams", teamHandler.CreateTeam)
		api.GET("/teams/:id", teamHandler.GetTeam)
		api.PUT("/teams/:id", teamHandler.UpdateTeam)
		api.DELETE("/teams/:id", teamHandler.DeleteTeam)

		api.GET("/activities", activityHandler.GetAllActivities)
		api.POST("/activities", activityHandler.CreateActivity)
		api.GET("/activities/:id", activityHandler.GetActivity)
		api.PUT("/activities/:id", activityHandler.UpdateActivity)
		api.DELETE("/activities/:id", activityHandler.DeleteActivity)

		api.GET("/workouts", workoutHandler.GetAllWorkouts)
		api.POST("/workouts", workoutHandler.CreateWorkout)
		api.GET("/workouts/search", workoutHandler.SearchWorkouts)
		api.GET("/workouts/:id", workoutHandler.GetWorkout)
		api.PUT("/workouts/:id", workoutHandler.UpdateWorkout)
		api.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		api.POST("/leaderboard", leaderboardHandler.CreateEntry)
		api.GET("/leaderboard/:id", leaderboardHandler.GetEntry)
		api.PUT("/leaderboard/:id", leaderboardHandler.UpdateEntry)
		api.DELETE("/leaderboard/:id", leaderboardHandler.DeleteEntry)

		api.GET("/stats", statHandler.GetStats)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func meiliHost(host string) string {
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}
	return host
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
