package service

import (
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

// bookRegistry is an arena of book records indexed by their dense id.
// Records are never freed, so len(books) always equals total_books.
type bookRegistry struct {
	books   []model.BookRecord
	byOwner map[model.Identity][]uint64
}

func newBookRegistry() *bookRegistry {
	return &bookRegistry{
		byOwner: make(map[model.Identity][]uint64),
	}
}

func (r *bookRegistry) total() uint64 {
	return uint64(len(r.books))
}

func (r *bookRegistry) nextID() uint64 {
	return r.total()
}

func (r *bookRegistry) insert(rec model.BookRecord) error {
	if rec.ID != r.nextID() {
		return errors.Wrapf(errs.ErrInvariant, "book id %d allocated, next is %d", rec.ID, r.nextID())
	}
	r.books = append(r.books, rec)
	r.byOwner[rec.Owner] = append(r.byOwner[rec.Owner], rec.ID)
	return nil
}

func (r *bookRegistry) get(id uint64) (model.BookRecord, error) {
	if id >= r.total() {
		return model.BookRecord{}, errs.ErrBookUnavailable
	}
	return r.books[id], nil
}

func (r *bookRegistry) owned(owner model.Identity) []model.BookRecord {
	ids := r.byOwner[owner]
	out := make([]model.BookRecord, 0, len(ids))
	for _, id := range ids {
		if rec := r.books[id]; rec.Status() != model.StatusInactive {
			out = append(out, rec)
		}
	}
	return out
}

func (r *bookRegistry) checkBorrow(id uint64, borrower model.Identity) (model.BookRecord, error) {
	rec, err := r.get(id)
	if err != nil {
		return model.BookRecord{}, err
	}
	if rec.Status() != model.StatusAvailable {
		return model.BookRecord{}, errs.ErrBookUnavailable
	}
	if rec.Owner == borrower {
		return model.BookRecord{}, errs.ErrUnauthorized
	}
	return rec, nil
}

func (r *bookRegistry) setBorrowed(id uint64, loan model.Loan) error {
	if _, err := r.checkBorrow(id, loan.Borrower); err != nil {
		return errors.Wrapf(errs.ErrInvariant, "borrow book %d after checks: %v", id, err)
	}
	r.books[id].State = model.Borrowed(loan)
	return nil
}

func (r *bookRegistry) checkReturn(id uint64, caller model.Identity) (model.Loan, error) {
	rec, err := r.get(id)
	if err != nil {
		return model.Loan{}, errs.ErrInvalidReturn
	}
	loan, ok := rec.State.Loan()
	if !ok || rec.Status() != model.StatusBorrowed {
		return model.Loan{}, errs.ErrInvalidReturn
	}
	if loan.Borrower != caller {
		return model.Loan{}, errs.ErrUnauthorized
	}
	return loan, nil
}

func (r *bookRegistry) setAvailable(id uint64, caller model.Identity) error {
	if _, err := r.checkReturn(id, caller); err != nil {
		return errors.Wrapf(errs.ErrInvariant, "return book %d after checks: %v", id, err)
	}
	r.books[id].State = model.Available()
	return nil
}

func (r *bookRegistry) checkRemove(id uint64, caller model.Identity) (model.BookRecord, error) {
	rec, err := r.checkOwner(id, caller)
	if err != nil {
		return model.BookRecord{}, err
	}
	if rec.Status() != model.StatusAvailable {
		return model.BookRecord{}, errs.ErrBookUnavailable
	}
	return rec, nil
}

func (r *bookRegistry) setInactive(id uint64, caller model.Identity) error {
	if _, err := r.checkRemove(id, caller); err != nil {
		return errors.Wrapf(errs.ErrInvariant, "remove book %d after checks: %v", id, err)
	}
	r.books[id].State = model.Inactive()
	return nil
}

func (r *bookRegistry) checkOwner(id uint64, caller model.Identity) (model.BookRecord, error) {
	rec, err := r.get(id)
	if err != nil {
		return model.BookRecord{}, err
	}
	if rec.Owner != caller {
		return model.BookRecord{}, errs.ErrNotOwner
	}
	return rec, nil
}

func (r *bookRegistry) updatePrice(id uint64, caller model.Identity, price uint64) (model.BookRecord, error) {
	if _, err := r.checkOwner(id, caller); err != nil {
		return model.BookRecord{}, err
	}
	r.books[id].LendingPrice = price
	return r.books[id], nil
}

func (r *bookRegistry) updateTitle(id uint64, caller model.Identity, title string) (model.BookRecord, error) {
	if _, err := r.checkOwner(id, caller); err != nil {
		return model.BookRecord{}, err
	}
	r.books[id].Title = title
	return r.books[id], nil
}
