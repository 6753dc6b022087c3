package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-registry/lending/internal/ledger"
	"github.com/Astemirdum/lending-registry/pkg/circuit_breaker"
)

func TestMemory_TransferIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory(map[string]uint64{"alice": 100, "bob": 5})

	err := l.Transfer(ctx,
		ledger.Transfer{From: "alice", To: "operator", Amount: 60},
		ledger.Transfer{From: "alice", To: "bob", Amount: 60},
	)
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	for id, want := range map[string]uint64{"alice": 100, "bob": 5, "operator": 0} {
		got, err := l.Balance(ctx, id)
		require.NoError(t, err)
		require.Equal(t, want, got, id)
	}

	require.NoError(t, l.Transfer(ctx,
		ledger.Transfer{From: "alice", To: "operator", Amount: 40},
		ledger.Transfer{From: "alice", To: "bob", Amount: 60},
		ledger.Transfer{From: "bob", To: "bob", Amount: 1_000},
		ledger.Transfer{From: "bob", To: "alice", Amount: 0},
	))
	for id, want := range map[string]uint64{"alice": 0, "bob": 65, "operator": 40} {
		got, err := l.Balance(ctx, id)
		require.NoError(t, err)
		require.Equal(t, want, got, id)
	}
}

func TestMemory_ChainedTransfersSeeEarlierOnes(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory(map[string]uint64{"alice": 10})

	require.NoError(t, l.Transfer(ctx,
		ledger.Transfer{From: "alice", To: "bob", Amount: 10},
		ledger.Transfer{From: "bob", To: "carol", Amount: 10},
	))
	got, err := l.Balance(ctx, "carol")
	require.NoError(t, err)
	require.EqualValues(t, 10, got)
}

func TestMemory_Credit(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory(nil)

	require.ErrorIs(t, l.Credit(ctx, "alice", 0), ledger.ErrInvalidAmount)
	require.NoError(t, l.Credit(ctx, "alice", 7))
	got, err := l.Balance(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 7, got)
}

type failingLedger struct {
	ledger.Ledger
	err error
}

func (f failingLedger) Transfer(context.Context, ...ledger.Transfer) error { return f.err }

func TestWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	outage := errors.New("connection refused")

	cb := circuit_breaker.New(2, time.Minute, 0.5, 1, circuit_breaker.WithFailurePredicate(ledger.IsOutage))
	funds := ledger.WithCircuitBreaker(failingLedger{err: ledger.ErrInsufficientFunds}, cb)
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, funds.Transfer(ctx, ledger.Transfer{From: "a", To: "b", Amount: 1}), ledger.ErrInsufficientFunds)
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	down := ledger.WithCircuitBreaker(failingLedger{err: outage}, cb)
	require.ErrorIs(t, down.Transfer(ctx, ledger.Transfer{From: "a", To: "b", Amount: 1}), outage)
	require.ErrorIs(t, down.Transfer(ctx, ledger.Transfer{From: "a", To: "b", Amount: 1}), circuit_breaker.ErrOpenCB)
}
