package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petboard/internal/domain/account"
	"petboard/internal/handler/api"
	"petboard/internal/handler/middleware"
	"petboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	petHandler *api.PetHandler,
	serviceHandler *api.ServiceHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, petHandler, serviceHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	petHandler *api.PetHandler,
	serviceHandler *api.ServiceHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/owner/register", Handler: authHandler.RegisterOwner},
				{Method: http.MethodPost, Path: "/owner/login", Handler: authHandler.LoginOwner},
				{Method: http.MethodPost, Path: "/provider/register", Handler: authHandler.RegisterProvider},
				{Method: http.MethodPost, Path: "/provider/login", Handler: authHandler.LoginProvider},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		// Pet registry and bookings are owner-side surfaces.
		pets := apiGroup.Group("/pets")
		pets.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(account.RoleOwner))
		{
			addRoutes(pets, []route{
				{Method: http.MethodPost, Path: "", Handler: petHandler.CreatePet},
				{Method: http.MethodGet, Path: "", Handler: petHandler.ListPets},
				{Method: http.MethodDelete, Path: "/:id", Handler: petHandler.DeletePet},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(account.RoleOwner))
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
			})
		}

		// The catalog and availability are public; mutation and the
		// per-service booking list require the provider role.
		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: serviceHandler.SearchServices},
				{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.GetService},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: serviceHandler.GetAvailability},
			})

			providerOnly := services.Group("")
			providerOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(account.RoleProvider))
			addRoutes(providerOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: serviceHandler.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: serviceHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: serviceHandler.DeleteService},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: serviceHandler.ListServiceReservations},
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
