package service

import (
	"context"
	"math/bits"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/events"
	"github.com/Astemirdum/lending-registry/lending/internal/ledger"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

type ValueLedger interface {
	Balance(ctx context.Context, id model.Identity) (uint64, error)
	Transfer(ctx context.Context, transfers ...ledger.Transfer) error
	Credit(ctx context.Context, id model.Identity, amount uint64) error
}

// Service is the lending engine. Operations run one at a time under mu and
// mutate the registry and accounts only after every check and every ledger
// transfer of the operation has succeeded.
type Service struct {
	mu        sync.RWMutex
	log       *zap.Logger
	ledger    ValueLedger
	publisher events.Publisher

	registry *bookRegistry
	accounts *accountLedger
	policy   *adminPolicy
	outbox   []events.Event
}

func NewService(p Policy, ledger ValueLedger, publisher events.Publisher, log *zap.Logger) (*Service, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "lending policy")
	}
	return &Service{
		log:       log.Named("service"),
		ledger:    ledger,
		publisher: publisher,
		registry:  newBookRegistry(),
		accounts:  newAccountLedger(),
		policy:    newAdminPolicy(p),
	}, nil
}

func (s *Service) ListBook(_ context.Context, caller model.Caller, req model.ListBookRequest) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateTitle(req.Title); err != nil {
		return model.BookRecord{}, err
	}
	if err := validateAuthor(req.Author); err != nil {
		return model.BookRecord{}, err
	}
	if err := validatePrice(req.Price); err != nil {
		return model.BookRecord{}, err
	}
	if !s.accounts.canList(caller.Identity, s.policy.params.MaxBooksPerUser) {
		return model.BookRecord{}, errs.ErrLimitExceeded
	}

	rec := model.BookRecord{
		ID:           s.registry.nextID(),
		Owner:        caller.Identity,
		Title:        req.Title,
		Author:       req.Author,
		LendingPrice: req.Price,
		State:        model.Available(),
	}
	if err := s.registry.insert(rec); err != nil {
		return model.BookRecord{}, s.defect(err)
	}
	if err := s.accounts.adjustBookCount(caller.Identity, 1); err != nil {
		return model.BookRecord{}, s.defect(err)
	}

	s.committed(events.New(events.BookListed, caller).WithBook(rec.ID), zap.Uint64("book_id", rec.ID))
	return rec, nil
}

func (s *Service) DonateBook(_ context.Context, caller model.Caller, req model.DonateBookRequest) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateTitle(req.Title); err != nil {
		return model.BookRecord{}, err
	}
	if err := validateAuthor(req.Author); err != nil {
		return model.BookRecord{}, err
	}

	rec := model.BookRecord{
		ID:      s.registry.nextID(),
		Owner:   s.policy.operator,
		Title:   req.Title,
		Author:  req.Author,
		Donated: true,
		State:   model.Available(),
	}
	if err := s.registry.insert(rec); err != nil {
		return model.BookRecord{}, s.defect(err)
	}

	e := events.New(events.BookDonated, caller).WithBook(rec.ID)
	e.Counterpart = s.policy.operator
	s.committed(e, zap.Uint64("book_id", rec.ID))
	return rec, nil
}

// BorrowBook settles fee and price in one ledger batch: the fee goes to the
// operator, the price to the owner. The caller must also be able to cover
// the deposit requirement, which is recorded against the loan and refunded
// by the operator on return.
func (s *Service) BorrowBook(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	rec, err := s.registry.checkBorrow(id, caller.Identity)
	if err != nil {
		return model.BookRecord{}, err
	}

	params := s.policy.params
	required, err := addChecked(rec.LendingPrice, params.DepositRequirement)
	if err != nil {
		return model.BookRecord{}, errs.ErrInsufficientFunds
	}
	if _, err = addChecked(s.accounts.deposit(caller.Identity), params.DepositRequirement); err != nil {
		return model.BookRecord{}, errs.ErrInsufficientFunds
	}
	balance, err := s.ledger.Balance(ctx, caller.Identity)
	if err != nil {
		return model.BookRecord{}, errors.Wrap(err, "ledger balance")
	}
	if balance < required {
		return model.BookRecord{}, errs.ErrInsufficientFunds
	}

	fee := lendingFee(rec.LendingPrice, params.LendingFeePercent)
	transfers := []ledger.Transfer{
		{From: caller.Identity, To: s.policy.operator, Amount: fee},
		{From: caller.Identity, To: rec.Owner, Amount: rec.LendingPrice},
	}
	if err = s.ledger.Transfer(ctx, transfers...); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return model.BookRecord{}, errs.ErrInsufficientFunds
		}
		s.log.Error("borrow transfer", zap.Uint64("book_id", id), zap.Error(err))
		return model.BookRecord{}, errors.Wrap(err, "ledger transfer")
	}

	loan := model.Loan{
		Borrower:    caller.Identity,
		BorrowBlock: caller.Block,
		DueBlock:    saturatingAdd(caller.Block, params.MaxLendingPeriod),
		Deposit:     params.DepositRequirement,
	}
	if err = s.registry.setBorrowed(id, loan); err != nil {
		s.compensate(ctx, transfers)
		return model.BookRecord{}, s.defect(err)
	}
	if err = s.accounts.adjustBorrowedCount(caller.Identity, 1); err != nil {
		s.registry.books[id].State = model.Available()
		s.compensate(ctx, transfers)
		return model.BookRecord{}, s.defect(err)
	}
	s.accounts.holdDeposit(caller.Identity, loan.Deposit)

	e := events.New(events.BookBorrowed, caller).WithBook(id)
	e.Counterpart = rec.Owner
	e.Amount = rec.LendingPrice
	e.Fee = fee
	s.committed(e, zap.Uint64("book_id", id), zap.Uint64("fee", fee))
	return s.registry.books[id], nil
}

// ReturnBook has the operator refund the deposit recorded for this loan,
// which is the requirement in force at borrow time.
func (s *Service) ReturnBook(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	loan, err := s.registry.checkReturn(id, caller.Identity)
	if err != nil {
		return model.BookRecord{}, err
	}
	if s.accounts.deposit(caller.Identity) < loan.Deposit || s.accounts.get(caller.Identity).BorrowedCount == 0 {
		return model.BookRecord{}, s.defect(errors.Wrapf(errs.ErrInvariant, "accounts of %q out of sync with loan of book %d", caller.Identity, id))
	}

	refund := ledger.Transfer{From: s.policy.operator, To: caller.Identity, Amount: loan.Deposit}
	if err = s.ledger.Transfer(ctx, refund); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return model.BookRecord{}, errs.ErrInsufficientDeposit
		}
		s.log.Error("return transfer", zap.Uint64("book_id", id), zap.Error(err))
		return model.BookRecord{}, errors.Wrap(err, "ledger transfer")
	}

	if err = s.registry.setAvailable(id, caller.Identity); err != nil {
		s.compensate(ctx, []ledger.Transfer{refund})
		return model.BookRecord{}, s.defect(err)
	}
	// both were checked above
	_ = s.accounts.adjustBorrowedCount(caller.Identity, -1)
	_ = s.accounts.releaseDeposit(caller.Identity, loan.Deposit)

	e := events.New(events.BookReturned, caller).WithBook(id)
	e.Counterpart = s.policy.operator
	e.Amount = loan.Deposit
	s.committed(e, zap.Uint64("book_id", id), zap.Bool("overdue", caller.Block > loan.DueBlock))
	return s.registry.books[id], nil
}

func (s *Service) RemoveBook(_ context.Context, caller model.Caller, id uint64) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	rec, err := s.registry.checkRemove(id, caller.Identity)
	if err != nil {
		return model.BookRecord{}, err
	}
	if !rec.Donated {
		if err = s.accounts.checkBookCount(caller.Identity, -1); err != nil {
			return model.BookRecord{}, err
		}
	}

	if err = s.registry.setInactive(id, caller.Identity); err != nil {
		return model.BookRecord{}, s.defect(err)
	}
	if !rec.Donated {
		_ = s.accounts.adjustBookCount(caller.Identity, -1)
	}

	s.committed(events.New(events.BookRemoved, caller).WithBook(id), zap.Uint64("book_id", id))
	return s.registry.books[id], nil
}

func (s *Service) UpdateLendingPrice(_ context.Context, caller model.Caller, id, price uint64) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	if err := validatePrice(price); err != nil {
		return model.BookRecord{}, err
	}
	rec, err := s.registry.updatePrice(id, caller.Identity, price)
	if err != nil {
		return model.BookRecord{}, err
	}

	e := events.New(events.LendingPriceUpdated, caller).WithBook(id)
	e.Amount = price
	s.committed(e, zap.Uint64("book_id", id), zap.Uint64("price", price))
	return rec, nil
}

func (s *Service) ChangeBookTitle(_ context.Context, caller model.Caller, id uint64, title string) (model.BookRecord, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := validateTitle(title); err != nil {
		return model.BookRecord{}, err
	}
	if err := validateBookID(id, s.registry.total()); err != nil {
		return model.BookRecord{}, err
	}
	rec, err := s.registry.updateTitle(id, caller.Identity, title)
	if err != nil {
		return model.BookRecord{}, err
	}

	s.committed(events.New(events.BookTitleChanged, caller).WithBook(id), zap.Uint64("book_id", id))
	return rec, nil
}

func (s *Service) SetLendingFee(_ context.Context, caller model.Caller, pct uint64) (model.Params, error) {
	return s.setParam(caller, "lendingFeePercent", pct, s.policy.setLendingFee)
}

func (s *Service) SetMaxLendingPeriod(_ context.Context, caller model.Caller, blocks uint64) (model.Params, error) {
	return s.setParam(caller, "maxLendingPeriod", blocks, s.policy.setMaxLendingPeriod)
}

func (s *Service) SetDepositRequirement(_ context.Context, caller model.Caller, amount uint64) (model.Params, error) {
	return s.setParam(caller, "depositRequirement", amount, s.policy.setDepositRequirement)
}

func (s *Service) SetMaxBooksPerUser(_ context.Context, caller model.Caller, n uint64) (model.Params, error) {
	return s.setParam(caller, "maxBooksPerUser", n, s.policy.setMaxBooksPerUser)
}

func (s *Service) setParam(caller model.Caller, name string, v uint64, set func(model.Identity, uint64) error) (model.Params, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := set(caller.Identity, v); err != nil {
		return model.Params{}, err
	}

	e := events.New(events.ParameterChanged, caller)
	e.Parameter = name
	e.Amount = v
	s.committed(e, zap.String("param", name), zap.Uint64("value", v))
	return s.params(), nil
}

// CreditAccount funds an identity on the value ledger. Operator only.
func (s *Service) CreditAccount(ctx context.Context, caller model.Caller, id model.Identity, amount uint64) (uint64, error) {
	s.mu.Lock()
	defer s.unlock()

	if err := s.policy.authorize(caller.Identity); err != nil {
		return 0, err
	}
	if id == "" || amount == 0 {
		return 0, errs.ErrInvalidParams
	}
	if err := s.ledger.Credit(ctx, id, amount); err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			return 0, errs.ErrInvalidParams
		}
		return 0, errors.Wrap(err, "ledger credit")
	}
	balance, err := s.ledger.Balance(ctx, id)
	if err != nil {
		return 0, errors.Wrap(err, "ledger balance")
	}

	e := events.New(events.AccountCredited, caller)
	e.Counterpart = id
	e.Amount = amount
	s.committed(e, zap.String("identity", id), zap.Uint64("amount", amount))
	return balance, nil
}

// committed queues e for publishing once the engine lock is released.
func (s *Service) committed(e events.Event, fields ...zap.Field) {
	s.log.Debug(string(e.EventType), append(fields, zap.String("caller", e.Actor), zap.Uint64("block", e.Block))...)
	s.outbox = append(s.outbox, e)
}

// unlock releases the write lock and then publishes the queued events, so
// a slow broker never holds up other operations.
func (s *Service) unlock() {
	outbox := s.outbox
	s.outbox = nil
	s.mu.Unlock()
	for _, e := range outbox {
		if err := s.publisher.Publish(e); err != nil {
			s.log.Error("publish event", zap.String("type", string(e.EventType)), zap.Error(err))
		}
	}
}

func (s *Service) defect(err error) error {
	s.log.DPanic("invariant violated", zap.Error(err))
	return err
}

// compensate reverses transfers already applied by an operation that
// failed afterwards.
func (s *Service) compensate(ctx context.Context, applied []ledger.Transfer) {
	reverse := make([]ledger.Transfer, 0, len(applied))
	for i := len(applied) - 1; i >= 0; i-- {
		t := applied[i]
		reverse = append(reverse, ledger.Transfer{From: t.To, To: t.From, Amount: t.Amount})
	}
	if err := s.ledger.Transfer(context.WithoutCancel(ctx), reverse...); err != nil {
		s.log.Error("compensating transfer", zap.Any("transfers", reverse), zap.Error(err))
	}
}

// lendingFee is floor(price * pct / 100) without intermediate overflow.
func lendingFee(price, pct uint64) uint64 {
	hi, lo := bits.Mul64(price, pct)
	q, _ := bits.Div64(hi, lo, 100)
	return q
}

func addChecked(vs ...uint64) (uint64, error) {
	var sum, carry uint64
	for _, v := range vs {
		sum, carry = bits.Add64(sum, v, 0)
		if carry != 0 {
			return 0, errs.ErrInvalidParams
		}
	}
	return sum, nil
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
