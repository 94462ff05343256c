//go:build unit

package builder

import (
	"time"

	reqdto "raffle-engine/internal/handler/dto/request"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RaffleBuilder struct {
	ProductID         uuid.UUID
	PrizeProductID    uuid.UUID
	Title             string
	Description       string
	WinnersCount      int
	MaxEntriesPerUser int
	EntryStartAt      time.Time
	EntryEndAt        time.Time
	DrawAt            time.Time
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewRaffleBuilder() *RaffleBuilder {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &RaffleBuilder{
		ProductID:         uuid.New(),
		PrizeProductID:    uuid.New(),
		Title:             "Limited Sneaker Drop",
		Description:       "One pair per winner",
		WinnersCount:      3,
		MaxEntriesPerUser: 5,
		EntryStartAt:      now,
		EntryEndAt:        now.Add(7 * 24 * time.Hour),
		DrawAt:            now.Add(8 * 24 * time.Hour),
		Status:            "ACTIVE",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *RaffleBuilder) WithStatus(status string) *RaffleBuilder {
	b.Status = status
	return b
}

func (b *RaffleBuilder) BuildCreateRequestDTO() reqdto.CreateRaffleRequest {
	return reqdto.CreateRaffleRequest{
		ProductID:         b.ProductID,
		PrizeProductID:    b.PrizeProductID,
		Title:             b.Title,
		Description:       b.Description,
		WinnersCount:      b.WinnersCount,
		MaxEntriesPerUser: b.MaxEntriesPerUser,
		EntryStartAt:      b.EntryStartAt,
		EntryEndAt:        b.EntryEndAt,
		DrawAt:            b.DrawAt,
	}
}

func (b *RaffleBuilder) BuildUpdateRequestDTO() reqdto.UpdateRaffleRequest {
	return reqdto.UpdateRaffleRequest{
		Title:             b.Title,
		Description:       b.Description,
		WinnersCount:      b.WinnersCount,
		MaxEntriesPerUser: b.MaxEntriesPerUser,
		EntryStartAt:      b.EntryStartAt,
		EntryEndAt:        b.EntryEndAt,
		DrawAt:            b.DrawAt,
	}
}

func (b *RaffleBuilder) BuildView() *queries.RaffleView {
	return &queries.RaffleView{
		ID:                uuid.New(),
		ProductID:         b.ProductID,
		PrizeProductID:    b.PrizeProductID,
		Title:             b.Title,
		Description:       b.Description,
		WinnersCount:      b.WinnersCount,
		MaxEntriesPerUser: b.MaxEntriesPerUser,
		EntryStartAt:      b.EntryStartAt,
		EntryEndAt:        b.EntryEndAt,
		DrawAt:            b.DrawAt,
		Status:            b.Status,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *RaffleBuilder) BuildTicketView(raffleID, userID uuid.UUID, number int64) *queries.TicketView {
	return &queries.TicketView{
		ID:           uuid.New(),
		RaffleID:     raffleID,
		UserID:       userID,
		TicketNumber: number,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *RaffleBuilder) BuildWinnerView(raffleID uuid.UUID, rank int) *queries.WinnerView {
	return &queries.WinnerView{
		ID:           uuid.New(),
		RaffleID:     raffleID,
		TicketID:     uuid.New(),
		TicketNumber: int64(rank),
		UserID:       uuid.New(),
		Rank:         rank,
		Status:       "RESERVED",
		CreatedAt:    b.CreatedAt,
	}
}
