package raffle

import (
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEntryWindow   = errs.New("entry window end must be after start")
	ErrInvalidDrawTime      = errs.New("draw time must not precede entry window end")
	ErrInvalidWinnersCount  = errs.New("winners count must be positive")
	ErrInvalidEntryLimit    = errs.New("max entries per user must be positive")
	ErrEmptyTitle           = errs.New("title must not be empty")
	ErrNotDraft             = errs.New("raffle is not in draft")
	ErrNotActive            = errs.New("raffle is not accepting entries")
	ErrEntryNotStarted      = errs.New("entry window has not started")
	ErrEntryClosed          = errs.New("entry window has closed")
	ErrEntryLimitExceeded   = errs.New("per-user entry limit exceeded")
	ErrAlreadyTerminal      = errs.New("raffle is in a terminal state")
	ErrEntryStillOpen       = errs.New("entry window is still open")
	ErrIllegalTransition    = errs.New("illegal status transition")
	ErrInvalidEntryQuantity = errs.New("entry quantity must be positive")
)

type Raffle struct {
	id                uuid.UUID
	productID         uuid.UUID
	prizeProductID    uuid.UUID
	title             string
	description       string
	winnersCount      int
	maxEntriesPerUser int
	entryStartAt      time.Time
	entryEndAt        time.Time
	drawAt            time.Time
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRaffle(
	productID, prizeProductID uuid.UUID,
	title, description string,
	winnersCount, maxEntriesPerUser int,
	entryStartAt, entryEndAt, drawAt time.Time,
) (*Raffle, error) {
	if err := validateSpec(title, winnersCount, maxEntriesPerUser, entryStartAt, entryEndAt, drawAt); err != nil {
		return nil, err
	}

	return &Raffle{
		id:                uuid.New(),
		productID:         productID,
		prizeProductID:    prizeProductID,
		title:             title,
		description:       description,
		winnersCount:      winnersCount,
		maxEntriesPerUser: maxEntriesPerUser,
		entryStartAt:      entryStartAt,
		entryEndAt:        entryEndAt,
		drawAt:            drawAt,
		status:            StatusDraft,
	}, nil
}

func ReconstructRaffle(
	id, productID, prizeProductID uuid.UUID,
	title, description string,
	winnersCount, maxEntriesPerUser int,
	entryStartAt, entryEndAt, drawAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Raffle {
	return &Raffle{
		id:                id,
		productID:         productID,
		prizeProductID:    prizeProductID,
		title:             title,
		description:       description,
		winnersCount:      winnersCount,
		maxEntriesPerUser: maxEntriesPerUser,
		entryStartAt:      entryStartAt,
		entryEndAt:        entryEndAt,
		drawAt:            drawAt,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func validateSpec(title string, winnersCount, maxEntriesPerUser int, entryStartAt, entryEndAt, drawAt time.Time) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if winnersCount <= 0 {
		return ErrInvalidWinnersCount
	}
	if maxEntriesPerUser <= 0 {
		return ErrInvalidEntryLimit
	}
	if !entryEndAt.After(entryStartAt) {
		return ErrInvalidEntryWindow
	}
	if drawAt.Before(entryEndAt) {
		return ErrInvalidDrawTime
	}
	return nil
}

// UpdateSpec replaces the editable fields. Allowed only while DRAFT.
func (r *Raffle) UpdateSpec(
	title, description string,
	winnersCount, maxEntriesPerUser int,
	entryStartAt, entryEndAt, drawAt time.Time,
) error {
	if r.status != StatusDraft {
		return ErrNotDraft
	}
	if err := validateSpec(title, winnersCount, maxEntriesPerUser, entryStartAt, entryEndAt, drawAt); err != nil {
		return err
	}

	r.title = title
	r.description = description
	r.winnersCount = winnersCount
	r.maxEntriesPerUser = maxEntriesPerUser
	r.entryStartAt = entryStartAt
	r.entryEndAt = entryEndAt
	r.drawAt = drawAt
	return nil
}

func (r *Raffle) Publish() error {
	if r.status != StatusDraft {
		return ErrNotDraft
	}
	r.status = StatusReady
	return nil
}

func (r *Raffle) Cancel() error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	r.status = StatusCancelled
	return nil
}

// ValidateEntry runs the stateless entry checks: lifecycle status, wall-clock
// window, and the per-user cap. The window is checked regardless of the
// persisted status so a stale ACTIVE row can never admit late entries.
func (r *Raffle) ValidateEntry(now time.Time, existingTickets, requested int) error {
	if requested <= 0 {
		return ErrInvalidEntryQuantity
	}
	if r.status != StatusActive {
		return ErrNotActive
	}
	if now.Before(r.entryStartAt) {
		return ErrEntryNotStarted
	}
	if now.After(r.entryEndAt) {
		return ErrEntryClosed
	}
	if existingTickets+requested > r.maxEntriesPerUser {
		return ErrEntryLimitExceeded
	}
	return nil
}

// ValidateDrawable checks eligibility for winner selection. Drawing is allowed
// once the entry window has closed; the already-drawn and cancelled guards are
// what make redelivered triggers safe.
func (r *Raffle) ValidateDrawable(now time.Time) error {
	if r.status == StatusDrawn || r.status == StatusCancelled {
		return ErrAlreadyTerminal
	}
	if now.Before(r.entryEndAt) {
		return ErrEntryStillOpen
	}
	return nil
}

func (r *Raffle) ID() uuid.UUID             { return r.id }
func (r *Raffle) ProductID() uuid.UUID      { return r.productID }
func (r *Raffle) PrizeProductID() uuid.UUID { return r.prizeProductID }
func (r *Raffle) Title() string             { return r.title }
func (r *Raffle) Description() string       { return r.description }
func (r *Raffle) WinnersCount() int         { return r.winnersCount }
func (r *Raffle) MaxEntriesPerUser() int    { return r.maxEntriesPerUser }
func (r *Raffle) EntryStartAt() time.Time   { return r.entryStartAt }
func (r *Raffle) EntryEndAt() time.Time     { return r.entryEndAt }
func (r *Raffle) DrawAt() time.Time         { return r.drawAt }
func (r *Raffle) Status() Status            { return r.status }
func (r *Raffle) CreatedAt() time.Time      { return r.createdAt }
func (r *Raffle) UpdatedAt() time.Time      { return r.updatedAt }
