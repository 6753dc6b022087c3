package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

func (s *Service) GetBookDetails(_ context.Context, id uint64) (model.BookRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book(id)
}

func (s *Service) CheckBookStatus(_ context.Context, id uint64) (model.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, err := s.book(id)
	if err != nil {
		return "", err
	}
	return rec.Status(), nil
}

func (s *Service) IsBookBorrowed(_ context.Context, id uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, err := s.book(id)
	if err != nil {
		return false, err
	}
	return rec.Status() == model.StatusBorrowed, nil
}

func (s *Service) IsBookBorrowable(_ context.Context, id uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, err := s.book(id)
	if err != nil {
		return false, err
	}
	return rec.Status() == model.StatusAvailable, nil
}

// GetBorrowerDetails returns nil for a book that is not borrowed.
// Overdue is judged against the caller's block.
func (s *Service) GetBorrowerDetails(_ context.Context, caller model.Caller, id uint64) (*model.BorrowerDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, err := s.book(id)
	if err != nil {
		return nil, err
	}
	loan, ok := rec.State.Loan()
	if !ok {
		return nil, nil
	}
	return &model.BorrowerDetails{
		Borrower:    loan.Borrower,
		BorrowBlock: loan.BorrowBlock,
		DueBlock:    loan.DueBlock,
		Deposit:     loan.Deposit,
		Overdue:     caller.Block > loan.DueBlock,
	}, nil
}

func (s *Service) GetUserBooks(_ context.Context, id model.Identity) model.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.get(id)
}

func (s *Service) ListUserBooks(_ context.Context, id model.Identity) []model.BookRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.owned(id)
}

func (s *Service) GetUserDeposit(_ context.Context, id model.Identity) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.deposit(id)
}

func (s *Service) GetTotalBooks(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.total()
}

func (s *Service) GetLendingFee(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.params.LendingFeePercent
}

func (s *Service) GetMaxLendingPeriod(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.params.MaxLendingPeriod
}

func (s *Service) GetDepositRequirement(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.params.DepositRequirement
}

func (s *Service) GetMaxBooksPerUser(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.params.MaxBooksPerUser
}

func (s *Service) GetParams(_ context.Context) model.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params()
}

func (s *Service) IsOperator(id model.Identity) bool {
	return s.policy.isOperator(id)
}

func (s *Service) GetBalance(ctx context.Context, id model.Identity) (uint64, error) {
	balance, err := s.ledger.Balance(ctx, id)
	if err != nil {
		return 0, errors.Wrap(err, "ledger balance")
	}
	return balance, nil
}

func (s *Service) book(id uint64) (model.BookRecord, error) {
	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	return s.registry.get(id)
}

func (s *Service) params() model.Params {
	p := s.policy.params
	return model.Params{
		LendingFeePercent:  p.LendingFeePercent,
		MaxLendingPeriod:   p.MaxLendingPeriod,
		DepositRequirement: p.DepositRequirement,
		MaxBooksPerUser:    p.MaxBooksPerUser,
		TotalBooks:         s.registry.total(),
		Operator:           s.policy.operator,
	}
}
