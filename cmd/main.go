package main

import (
	"fmt"
	"os"

	"github.com/fitfi/style-engine/internal/clients/redis"
	"github.com/fitfi/style-engine/internal/db"
	"github.com/fitfi/style-engine/internal/engine"
	"github.com/fitfi/style-engine/internal/handlers"
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/repos"
	"github.com/fitfi/style-engine/internal/server"
	"github.com/fitfi/style-engine/internal/services"
	"github.com/fitfi/style-engine/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)

	// Database
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	productRepo := repos.NewProductRepo(thePG, log)
	swapRepo := repos.NewOutfitSwapRepo(thePG, log)

	// Profile cache (optional; the service degrades to recompute-always)
	var profileCache redis.ProfileCache
	if cache, err := redis.NewProfileCache(log); err != nil {
		log.Warn("Could not init profile cache, running without", "error", err)
	} else {
		profileCache = cache
		defer profileCache.Close()
	}

	// Engine
	classifierCfg := engine.DefaultClassifierConfig()
	classifierCfg.MinConfidence = utils.GetEnvAsFloat("ARCHETYPE_MIN_CONFIDENCE", classifierCfg.MinConfidence, log)
	classifier := engine.NewClassifier(classifierCfg, log)
	scorer := engine.NewScorer(engine.DefaultScoreConfig())

	remixCfg := services.DefaultRemixConfig()
	remixCfg.CandidateLimit = utils.GetEnvAsInt("REMIX_CANDIDATE_LIMIT", remixCfg.CandidateLimit, log)
	remixCfg.SuggestionThreshold = utils.GetEnvAsFloat("REMIX_SUGGESTION_THRESHOLD", remixCfg.SuggestionThreshold, log)
	remixCfg.OptimizeCutoff = utils.GetEnvAsFloat("REMIX_OPTIMIZE_CUTOFF", remixCfg.OptimizeCutoff, log)

	// Services
	log.Info("Setting up Services from main...")
	profileService := services.NewStyleProfileService(log, classifier, profileCache)
	remixService := services.NewRemixService(log, remixCfg, scorer, productRepo, swapRepo)

	// Handlers
	profileHandler := handlers.NewStyleProfileHandler(log, profileService)
	outfitHandler := handlers.NewOutfitHandler(log, scorer, remixService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		StyleProfileHandler: profileHandler,
		OutfitHandler:       outfitHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
