package components

import (
	"offer-engine/internal/pkg/clock"
	"offer-engine/internal/usecase/commands"
	"offer-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewOfferCommands,
		queries.NewOfferQueries,
	),
)
