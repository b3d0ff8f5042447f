package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pointware/pointledger/internal/server/http/handlers"
	"github.com/pointware/pointledger/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PointFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	pointsHandler := handlers.NewPointsHandler(facade)

	api := engine.Group("/api")
	points := api.Group("/points")
	points.GET("/:id", pointsHandler.Balance)
	points.GET("/:id/histories", pointsHandler.Histories)
	points.PATCH("/:id/charge", pointsHandler.Charge)
	points.PATCH("/:id/use", pointsHandler.Use)

	return engine
}
