package routes

import (
	"net/http"

	_ "lyft_client/docs" // This will be auto-generated
	"lyft_client/internal/adapter/http/handlers"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Rides     *handlers.RideHandler
}

// NewRouter builds the gin engine for the HTTP gateway.
func NewRouter(h Handlers, log logger.ILogger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimates)
	addRideRoutes(v1, h.Rides)

	return router
}

func setMiddlewares(router *gin.Engine, log logger.ILogger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http][router] recovered from panic", logger.Any("panic", recovered), logger.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
