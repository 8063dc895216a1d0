package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/enigma/api/docs" // nolint: revive
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/rest/api"
)

func NewRouter(
	a *api.API,
	collector *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Observe(collector, clock, logger))
	router.GET("/status", a.Status)
	router.GET("/api/components", a.ListComponents)
	router.POST("/api/encrypt", a.Encrypt)
	router.GET("/api/keysheets/random", a.RandomKeysheet)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
