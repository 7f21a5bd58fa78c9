package components

import (
	"petboard/internal/handler"
	"petboard/internal/handler/api"
	"petboard/internal/handler/middleware"
	"petboard/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewPetHandler,
		api.NewServiceHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
