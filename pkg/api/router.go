package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ledcor/ledcor/pkg/api/handlers"
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller *controller.Controller
	validator  *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(ctrl *controller.Controller, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: ctrl,
		validator:  validator,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.controller)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Raw protocol frames
		packetsHandler := handlers.NewPacketsHandler(r.controller)
		v1.POST("/packets", packetsHandler.Process)
		v1.GET("/discovery", packetsHandler.Discovery)

		// Devices
		devicesHandler := handlers.NewDevicesHandler(r.controller)
		controlHandler := handlers.NewControlHandler(r.controller, r.validator)
		streamHandler := handlers.NewStreamHandler(r.controller)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.GET("/:id/frame", devicesHandler.GetFrame)
			devices.GET("/:id/custom-colors", devicesHandler.GetCustomColors)
			devices.GET("/:id/stream", streamHandler.Stream)

			// Device state control
			devices.GET("/:id/state", controlHandler.GetState)
			devices.POST("/:id/state", controlHandler.SetState)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
