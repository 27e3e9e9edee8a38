package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fitfi/style-engine/internal/handlers"
)

type RouterConfig struct {
	StyleProfileHandler *handlers.StyleProfileHandler
	OutfitHandler       *handlers.OutfitHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Style profile
		api.POST("/style-profile", cfg.StyleProfileHandler.ComputeStyleProfile)

		// Outfits
		api.POST("/outfits/score", cfg.OutfitHandler.ScoreOutfit)
		api.POST("/outfits/swap", cfg.OutfitHandler.SwapItem)
		api.POST("/outfits/suggestions", cfg.OutfitHandler.GetSuggestedSwaps)
		api.POST("/outfits/optimize", cfg.OutfitHandler.OptimizeOutfit)
		api.GET("/swap-patterns", cfg.OutfitHandler.GetSwapPatterns)
	}

	return router
}
