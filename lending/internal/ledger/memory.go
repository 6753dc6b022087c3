package ledger

import (
	"context"
	"sync"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

type memory struct {
	mu       sync.Mutex
	balances map[model.Identity]uint64
}

// NewMemory returns a process-local ledger seeded with the given balances.
func NewMemory(seed map[model.Identity]uint64) *memory {
	balances := make(map[model.Identity]uint64, len(seed))
	for id, amount := range seed {
		balances[id] = amount
	}
	return &memory{balances: balances}
}

func (m *memory) Balance(_ context.Context, id model.Identity) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[id], nil
}

func (m *memory) Credit(_ context.Context, id model.Identity, amount uint64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balances[id] > maxBalance-amount {
		return ErrInvalidAmount
	}
	m.balances[id] += amount
	return nil
}

// Transfer applies the batch to a scratch copy of the touched balances and
// publishes it only when every transfer succeeded.
func (m *memory) Transfer(ctx context.Context, transfers ...Transfer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	transfers = effective(transfers)

	m.mu.Lock()
	defer m.mu.Unlock()

	scratch := make(map[model.Identity]uint64, 2*len(transfers))
	get := func(id model.Identity) uint64 {
		if v, ok := scratch[id]; ok {
			return v
		}
		return m.balances[id]
	}
	for _, t := range transfers {
		if err := checkAmount(t.Amount); err != nil {
			return err
		}
		from := get(t.From)
		if from < t.Amount {
			return ErrInsufficientFunds
		}
		to := get(t.To)
		if to > maxBalance-t.Amount {
			return ErrInvalidAmount
		}
		scratch[t.From] = from - t.Amount
		scratch[t.To] = to + t.Amount
	}
	for id, v := range scratch {
		m.balances[id] = v
	}
	return nil
}

// maxBalance keeps memory balances representable in the postgres backend.
const maxBalance = uint64(1<<63 - 1)
