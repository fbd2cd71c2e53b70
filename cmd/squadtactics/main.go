package main

import (
	"net/http"
	"os"

	"github.com/Mastaba/FantasySquadTactics/internal/api"
	"github.com/Mastaba/FantasySquadTactics/internal/config"
	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/service"
	"github.com/Mastaba/FantasySquadTactics/internal/storage"
	"github.com/Mastaba/FantasySquadTactics/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load the server configuration file (optional). Path may be
	// provided via SQUAD_CONFIG or defaults to ./squadtactics_config.json
	// in the current working directory.
	configPath := os.Getenv("SQUAD_CONFIG")
	if configPath == "" {
		configPath = "./squadtactics_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid squad tactics configuration", err, logging.Fields{"config_path": configPath, "hint": "optional keys: server.address, board{height,width,terrain_weights}, match{army_points,orientation}"})
	}

	// Allow the DB path to be configured via SQUAD_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv("SQUAD_DB")
	if dbPath == "" {
		dbPath = "./data/squadtactics.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)

	hub := api.NewStreamHub()
	go hub.Run()

	matches := service.NewMatchService(repo, service.MatchSettings{
		BoardHeight:    cfg.BoardHeight,
		BoardWidth:     cfg.BoardWidth,
		TerrainWeights: cfg.TerrainWeights,
		ArmyPoints:     cfg.ArmyPoints,
		Orientation:    cfg.Orientation,
	}, hub)
	handler := api.NewHandler(repo, matches)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Catalog endpoints
		apiRoutes.GET(constants.RouteFactions, handler.ListFactions)
		apiRoutes.POST(constants.RouteFactions, handler.SaveFaction)
		apiRoutes.GET(constants.RouteFactionByKey, handler.GetFaction)
		apiRoutes.GET(constants.RouteAbilities, handler.ListAbilities)

		// Match lifecycle and actions
		apiRoutes.POST(constants.RouteMatch, handler.CreateMatch)
		apiRoutes.GET(constants.RouteMatch, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchMove, handler.MoveUnit)
		apiRoutes.POST(constants.RouteMatchAttack, handler.AttackUnit)
		apiRoutes.POST(constants.RouteMatchAbility, handler.UseAbility)
		apiRoutes.POST(constants.RouteMatchEndTurn, handler.EndTurn)

		// Planning queries
		apiRoutes.GET(constants.RouteUnitMoves, handler.UnitMoves)
		apiRoutes.GET(constants.RouteUnitAttacks, handler.UnitAttacks)
		apiRoutes.GET(constants.RouteUnitAbilityTargets, handler.UnitAbilityTargets)
		apiRoutes.GET(constants.RouteUnitEffects, handler.UnitEffects)

		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	router.GET(constants.RouteStream, hub.Stream(matches))
	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	// Start server on configured address
	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "version": version.String()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
