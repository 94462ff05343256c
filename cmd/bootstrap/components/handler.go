package components

import (
	"raffle-engine/internal/handler"
	"raffle-engine/internal/handler/api"
	"raffle-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRaffleHandler,
		api.NewEntryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
