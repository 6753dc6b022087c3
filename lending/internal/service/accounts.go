package service

import (
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

// accountLedger keeps per-identity counters and the held-deposit projection.
// A missing entry is an account with zero counts.
type accountLedger struct {
	accounts map[model.Identity]model.UserAccount
	deposits map[model.Identity]uint64
}

func newAccountLedger() *accountLedger {
	return &accountLedger{
		accounts: make(map[model.Identity]model.UserAccount),
		deposits: make(map[model.Identity]uint64),
	}
}

func (a *accountLedger) get(id model.Identity) model.UserAccount {
	return a.accounts[id]
}

func (a *accountLedger) canList(id model.Identity, maxBooks uint64) bool {
	return a.accounts[id].BookCount < maxBooks
}

// checkBookCount reports whether delta can be applied without underflow.
func (a *accountLedger) checkBookCount(id model.Identity, delta int64) error {
	_, err := applyDelta(a.accounts[id].BookCount, delta)
	return err
}

func (a *accountLedger) adjustBookCount(id model.Identity, delta int64) error {
	acc := a.accounts[id]
	n, err := applyDelta(acc.BookCount, delta)
	if err != nil {
		return err
	}
	acc.BookCount = n
	a.accounts[id] = acc
	return nil
}

func (a *accountLedger) adjustBorrowedCount(id model.Identity, delta int64) error {
	acc := a.accounts[id]
	n, err := applyDelta(acc.BorrowedCount, delta)
	if err != nil {
		return errors.Wrapf(errs.ErrInvariant, "borrowed count of %q", id)
	}
	acc.BorrowedCount = n
	a.accounts[id] = acc
	return nil
}

func (a *accountLedger) deposit(id model.Identity) uint64 {
	return a.deposits[id]
}

func (a *accountLedger) holdDeposit(id model.Identity, amount uint64) {
	a.deposits[id] += amount
}

// releaseDeposit drops the entry once nothing is held for the identity.
func (a *accountLedger) releaseDeposit(id model.Identity, amount uint64) error {
	held := a.deposits[id]
	if held < amount {
		return errors.Wrapf(errs.ErrInvariant, "deposit of %q: held %d, releasing %d", id, held, amount)
	}
	if held == amount {
		delete(a.deposits, id)
		return nil
	}
	a.deposits[id] = held - amount
	return nil
}

func applyDelta(n uint64, delta int64) (uint64, error) {
	if delta >= 0 {
		return n + uint64(delta), nil
	}
	dec := uint64(-delta)
	if dec > n {
		return 0, errs.ErrInvalidParams
	}
	return n - dec, nil
}
