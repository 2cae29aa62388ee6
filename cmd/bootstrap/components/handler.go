package components

import (
	"offer-engine/internal/handler"
	"offer-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
	),
	fx.Invoke(handler.NewRouter),
)
