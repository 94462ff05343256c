package components

import (
	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		drawing.NewShuffleSampler,
		fx.As(new(drawing.Sampler)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRaffleUseCase,
		commands.NewEntryUseCase,
		commands.NewDrawUseCase,
		NewLifecycleUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRaffleQueries,
		queries.NewTicketQueries,
		queries.NewWinnerQueries,
	),
)

func NewLifecycleUseCase(uow shared.UnitOfWork, reads commands.SweepReads, clk clock.Clock, cfg config.Config) commands.LifecycleCommands {
	return commands.NewLifecycleUseCase(uow, reads, clk, int32(cfg.Sweeper.PageSize))
}
