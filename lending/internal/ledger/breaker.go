package ledger

import (
	"context"
	"errors"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
	"github.com/Astemirdum/lending-registry/pkg/circuit_breaker"
)

type guarded struct {
	next Ledger
	cb   circuit_breaker.CircuitBreaker
}

// WithCircuitBreaker stops calling a failing backend. Rejected transfers
// (funds, amounts) are answers, not outages, and do not trip the breaker.
func WithCircuitBreaker(next Ledger, cb circuit_breaker.CircuitBreaker) Ledger {
	return &guarded{next: next, cb: cb}
}

// IsOutage reports whether err should count against the breaker.
func IsOutage(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrInsufficientFunds) &&
		!errors.Is(err, ErrInvalidAmount) &&
		!errors.Is(err, context.Canceled)
}

func (g *guarded) Balance(ctx context.Context, id model.Identity) (balance uint64, err error) {
	err = g.cb.Call(func() error {
		balance, err = g.next.Balance(ctx, id)
		return err
	})
	return balance, err
}

func (g *guarded) Transfer(ctx context.Context, transfers ...Transfer) error {
	return g.cb.Call(func() error {
		return g.next.Transfer(ctx, transfers...)
	})
}

func (g *guarded) Credit(ctx context.Context, id model.Identity, amount uint64) error {
	return g.cb.Call(func() error {
		return g.next.Credit(ctx, id, amount)
	})
}
