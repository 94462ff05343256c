package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-model views returned by the query side. Flat structs, JSON-tagged for
// direct serialization in handlers.

type RaffleView struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"productId"`
	PrizeProductID    uuid.UUID `json:"prizeProductId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	WinnersCount      int       `json:"winnersCount"`
	MaxEntriesPerUser int       `json:"maxEntriesPerUser"`
	EntryStartAt      time.Time `json:"entryStartAt"`
	EntryEndAt        time.Time `json:"entryEndAt"`
	DrawAt            time.Time `json:"raffleDrawAt"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type TicketView struct {
	ID           uuid.UUID `json:"id"`
	RaffleID     uuid.UUID `json:"raffleId"`
	UserID       uuid.UUID `json:"userId"`
	TicketNumber int64     `json:"ticketNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

type WinnerView struct {
	ID           uuid.UUID `json:"id"`
	RaffleID     uuid.UUID `json:"raffleId"`
	TicketID     uuid.UUID `json:"raffleTicketId"`
	TicketNumber int64     `json:"ticketNumber"`
	UserID       uuid.UUID `json:"userId"`
	Rank         int       `json:"rank"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
