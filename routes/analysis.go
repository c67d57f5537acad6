package routes

import (
	"contentguard/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAnalysisRoutes registers the form pages and the health check
func SetupAnalysisRoutes(router *gin.RouterGroup, ctrl *controllers.AnalysisController) {
	router.GET("/", ctrl.ShowForm)
	router.POST("/", ctrl.SubmitForm)
	router.GET("/health", ctrl.Health)
}

// SetupAPIRoutes registers the JSON endpoints. middleware applies to this group only.
func SetupAPIRoutes(router *gin.RouterGroup, ctrl *controllers.AnalysisController, middleware ...gin.HandlerFunc) {
	api := router.Group("/api", middleware...)
	{
		api.POST("/analyze", ctrl.AnalyzeAPI)
		// preflight is answered by the cors middleware before this runs
		api.OPTIONS("/analyze", func(c *gin.Context) { c.Status(204) })
	}
}
