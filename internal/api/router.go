package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valorsim/valorsim/internal/api/handlers"
	"github.com/valorsim/valorsim/internal/services"
	"github.com/valorsim/valorsim/internal/simulator"
	"github.com/valorsim/valorsim/pkg/config"
	"github.com/valorsim/valorsim/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, wsHub *services.WebSocketHub, cfg *config.Config, mapService *services.MapService, sim *simulator.Simulator) {
	// Initialize services
	cacheTTL := time.Duration(cfg.MatchCacheTTL) * time.Second
	matchService := services.NewMatchService(db, cache, wsHub, sim, cacheTTL)

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(matchService, cache, cfg.MaxBatchSimulation)
	playerHandler := handlers.NewPlayerHandler(cfg.MaxRosterSize)
	mapHandler := handlers.NewMapHandler(mapService, cache)

	// Player generation endpoints
	group.POST("/players/generate", playerHandler.GeneratePlayers)
	group.POST("/teams/generate", playerHandler.GenerateTeam)

	// Match endpoints
	group.POST("/matches/simulate", matchHandler.SimulateMatch)
	group.GET("/matches", matchHandler.ListMatches)
	group.GET("/matches/:id", matchHandler.GetMatch)

	// Map endpoints
	group.GET("/maps", mapHandler.ListMaps)
	group.POST("/maps", mapHandler.SaveMap)
	group.GET("/maps/:id/exists", mapHandler.MapExists)
}
