package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

type Type string

const (
	BookListed          Type = "BookListed"
	BookDonated         Type = "BookDonated"
	BookBorrowed        Type = "BookBorrowed"
	BookReturned        Type = "BookReturned"
	BookRemoved         Type = "BookRemoved"
	LendingPriceUpdated Type = "LendingPriceUpdated"
	BookTitleChanged    Type = "BookTitleChanged"
	ParameterChanged    Type = "ParameterChanged"
	AccountCredited     Type = "AccountCredited"
)

// Event describes one committed operation. Counterpart is the other party
// of a value movement: the owner on borrow, the operator on return.
type Event struct {
	EventID     uuid.UUID      `json:"eventId" db:"event_id"`
	EventType   Type           `json:"eventType" db:"event_type"`
	OccurredAt  time.Time      `json:"occurredAt" db:"occurred_at"`
	Block       uint64         `json:"block" db:"block"`
	Actor       model.Identity `json:"actor" db:"actor"`
	BookID      *uint64        `json:"bookId,omitempty" db:"book_id"`
	Counterpart string         `json:"counterpart,omitempty" db:"counterpart"`
	Amount      uint64         `json:"amount" db:"amount"`
	Fee         uint64         `json:"fee" db:"fee"`
	Parameter   string         `json:"parameter,omitempty" db:"-"`
}

func New(t Type, caller model.Caller) Event {
	return Event{
		EventID:    uuid.New(),
		EventType:  t,
		OccurredAt: time.Now().UTC(),
		Block:      caller.Block,
		Actor:      caller.Identity,
	}
}

func (e Event) WithBook(id uint64) Event {
	e.BookID = &id
	return e
}
