package request

import (
	"time"

	"raffle-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRaffleRequest struct {
	ProductID         uuid.UUID `json:"productId" binding:"required"`
	PrizeProductID    uuid.UUID `json:"prizeProductId" binding:"required"`
	Title             string    `json:"title" binding:"required,max=200"`
	Description       string    `json:"description" binding:"max=2000"`
	WinnersCount      int       `json:"winnersCount" binding:"required,min=1"`
	MaxEntriesPerUser int       `json:"maxEntriesPerUser" binding:"required,min=1"`
	EntryStartAt      time.Time `json:"entryStartAt" binding:"required"`
	EntryEndAt        time.Time `json:"entryEndAt" binding:"required"`
	DrawAt            time.Time `json:"raffleDrawAt" binding:"required"`
}

func (r *CreateRaffleRequest) ToSpec() commands.RaffleSpec {
	return commands.RaffleSpec{
		ProductID:         r.ProductID,
		PrizeProductID:    r.PrizeProductID,
		Title:             r.Title,
		Description:       r.Description,
		WinnersCount:      r.WinnersCount,
		MaxEntriesPerUser: r.MaxEntriesPerUser,
		EntryStartAt:      r.EntryStartAt,
		EntryEndAt:        r.EntryEndAt,
		DrawAt:            r.DrawAt,
	}
}

// UpdateRaffleRequest carries the full editable field set; drafts are
// replaced wholesale rather than patched. Product bindings are fixed at
// creation.
type UpdateRaffleRequest struct {
	Title             string    `json:"title" binding:"required,max=200"`
	Description       string    `json:"description" binding:"max=2000"`
	WinnersCount      int       `json:"winnersCount" binding:"required,min=1"`
	MaxEntriesPerUser int       `json:"maxEntriesPerUser" binding:"required,min=1"`
	EntryStartAt      time.Time `json:"entryStartAt" binding:"required"`
	EntryEndAt        time.Time `json:"entryEndAt" binding:"required"`
	DrawAt            time.Time `json:"raffleDrawAt" binding:"required"`
}

func (r *UpdateRaffleRequest) ToSpec() commands.RaffleSpec {
	return commands.RaffleSpec{
		Title:             r.Title,
		Description:       r.Description,
		WinnersCount:      r.WinnersCount,
		MaxEntriesPerUser: r.MaxEntriesPerUser,
		EntryStartAt:      r.EntryStartAt,
		EntryEndAt:        r.EntryEndAt,
		DrawAt:            r.DrawAt,
	}
}

type CreateEntriesRequest struct {
	UserID   uuid.UUID `json:"userId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}
