// Package ledger holds the value ledger backends the lending engine settles
// through. Every backend applies a batch of transfers all-or-nothing.
package ledger

import (
	"context"
	"errors"
	"math"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

var (
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	ErrInvalidAmount     = errors.New("ledger: invalid amount")
)

type Transfer struct {
	From   model.Identity `json:"from"`
	To     model.Identity `json:"to"`
	Amount uint64         `json:"amount"`
}

type Ledger interface {
	Balance(ctx context.Context, id model.Identity) (uint64, error)
	Transfer(ctx context.Context, transfers ...Transfer) error
	Credit(ctx context.Context, id model.Identity, amount uint64) error
}

// effective drops zero-amount and self transfers, which move nothing.
func effective(transfers []Transfer) []Transfer {
	out := make([]Transfer, 0, len(transfers))
	for _, t := range transfers {
		if t.Amount == 0 || t.From == t.To {
			continue
		}
		out = append(out, t)
	}
	return out
}

func checkAmount(amount uint64) error {
	if amount == 0 || amount > math.MaxInt64 {
		return ErrInvalidAmount
	}
	return nil
}
