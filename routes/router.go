package routes

import (
	"time"

	"contentguard/config"
	"contentguard/controllers"
	"contentguard/middlewares"
	"contentguard/services"
	"contentguard/views"
	"contentguard/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter builds the web front-end around analyzer.
func SetupRouter(cfg *config.Config, analyzer services.Analyzer, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(logger))
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.SetHTMLTemplate(tmpl)

	ctrl := controllers.NewAnalysisController(analyzer, logger)
	live := websocket.NewLiveHandler(analyzer, tmpl, cfg.Server.AllowOrigins, logger)

	SetupAnalysisRoutes(&router.RouterGroup, ctrl)
	var apiMiddleware []gin.HandlerFunc
	// without configured origins the API is same-origin only
	if len(cfg.Server.AllowOrigins) > 0 {
		apiMiddleware = append(apiMiddleware, cors.New(cors.Config{
			AllowOrigins:  cfg.Server.AllowOrigins,
			AllowMethods:  []string{"POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middlewares.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	SetupAPIRoutes(&router.RouterGroup, ctrl, apiMiddleware...)
	router.GET("/ws", live.ServeWS)

	return router, nil
}
