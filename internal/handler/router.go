package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"raffle-engine/internal/handler/api"
	"raffle-engine/internal/handler/middleware"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, raffleHandler *api.RaffleHandler, entryHandler *api.EntryHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, raffleHandler, entryHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, raffleHandler *api.RaffleHandler, entryHandler *api.EntryHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		raffles := apiGroup.Group("/raffles")
		{
			addRoutes(raffles, []route{
				{Method: http.MethodGet, Path: "", Handler: raffleHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: raffleHandler.Get},
				{Method: http.MethodGet, Path: "/:id/winners", Handler: raffleHandler.ListWinners},
			})

			adminOnly := []gin.HandlerFunc{
				authMiddleware.RequireAuth(),
				authMiddleware.RequireRole(jwt.RoleAdmin),
			}
			addRoutes(raffles, []route{
				{Method: http.MethodPost, Path: "", Handler: raffleHandler.Create, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: raffleHandler.Update, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: raffleHandler.Publish, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: raffleHandler.Cancel, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/draw", Handler: raffleHandler.Draw, Mw: adminOnly},
			})

			// Issuance is called by the payment collaborator after capture.
			issuerOnly := []gin.HandlerFunc{
				authMiddleware.RequireAuth(),
				authMiddleware.RequireRole(jwt.RoleService, jwt.RoleAdmin),
			}
			addRoutes(raffles, []route{
				{Method: http.MethodPost, Path: "/:id/entries", Handler: entryHandler.Create, Mw: issuerOnly},
			})

			authRequired := []gin.HandlerFunc{authMiddleware.RequireAuth()}
			addRoutes(raffles, []route{
				{Method: http.MethodGet, Path: "/:id/entries", Handler: entryHandler.List, Mw: authRequired},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
