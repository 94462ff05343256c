package components

import (
	"raffle-engine/internal/infra/db"
	"raffle-engine/internal/infra/readstore"
	"raffle-engine/internal/infra/uow"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRaffleReadStore,
			fx.As(new(queries.RaffleViewRepo)),
			fx.As(new(commands.SweepReads)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketViewRepo)),
		),
		fx.Annotate(
			readstore.NewWinnerReadStore,
			fx.As(new(queries.WinnerViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
