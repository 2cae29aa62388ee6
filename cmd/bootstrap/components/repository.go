package components

import (
	"offer-engine/internal/infra/readstore"
	"offer-engine/internal/infra/repository"
	"offer-engine/internal/usecase/commands"
	"offer-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
	),
)
