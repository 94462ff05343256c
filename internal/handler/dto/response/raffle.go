package response

import (
	"raffle-engine/internal/usecase/queries"
)

type RaffleResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"productId"`
	PrizeProductID    string `json:"prizeProductId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	WinnersCount      int    `json:"winnersCount"`
	MaxEntriesPerUser int    `json:"maxEntriesPerUser"`
	EntryStartAt      string `json:"entryStartAt"`
	EntryEndAt        string `json:"entryEndAt"`
	DrawAt            string `json:"raffleDrawAt"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

func FromRaffleView(v *queries.RaffleView) *RaffleResponse {
	return &RaffleResponse{
		ID:                v.ID.String(),
		ProductID:         v.ProductID.String(),
		PrizeProductID:    v.PrizeProductID.String(),
		Title:             v.Title,
		Description:       v.Description,
		WinnersCount:      v.WinnersCount,
		MaxEntriesPerUser: v.MaxEntriesPerUser,
		EntryStartAt:      v.EntryStartAt.UTC().Format(timeFormat),
		EntryEndAt:        v.EntryEndAt.UTC().Format(timeFormat),
		DrawAt:            v.DrawAt.UTC().Format(timeFormat),
		Status:            v.Status,
		CreatedAt:         v.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:         v.UpdatedAt.UTC().Format(timeFormat),
	}
}

func FromRaffleList(items []*queries.RaffleView) []*RaffleResponse {
	res := make([]*RaffleResponse, len(items))
	for i, it := range items {
		res[i] = FromRaffleView(it)
	}
	return res
}

type TicketResponse struct {
	ID           string `json:"id"`
	RaffleID     string `json:"raffleId"`
	UserID       string `json:"userId"`
	TicketNumber int64  `json:"ticketNumber"`
	CreatedAt    string `json:"createdAt"`
}

func FromTicketViews(items []*queries.TicketView) []*TicketResponse {
	res := make([]*TicketResponse, len(items))
	for i, it := range items {
		res[i] = &TicketResponse{
			ID:           it.ID.String(),
			RaffleID:     it.RaffleID.String(),
			UserID:       it.UserID.String(),
			TicketNumber: it.TicketNumber,
			CreatedAt:    it.CreatedAt.UTC().Format(timeFormat),
		}
	}
	return res
}

type WinnerResponse struct {
	ID           string `json:"id"`
	RaffleID     string `json:"raffleId"`
	TicketID     string `json:"raffleTicketId"`
	TicketNumber int64  `json:"ticketNumber"`
	UserID       string `json:"userId"`
	Rank         int    `json:"rank"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func FromWinnerViews(items []*queries.WinnerView) []*WinnerResponse {
	res := make([]*WinnerResponse, len(items))
	for i, it := range items {
		res[i] = &WinnerResponse{
			ID:           it.ID.String(),
			RaffleID:     it.RaffleID.String(),
			TicketID:     it.TicketID.String(),
			TicketNumber: it.TicketNumber,
			UserID:       it.UserID.String(),
			Rank:         it.Rank,
			Status:       it.Status,
			CreatedAt:    it.CreatedAt.UTC().Format(timeFormat),
		}
	}
	return res
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"
