package handler

import (
	"context"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
	"github.com/Astemirdum/lending-registry/lending/internal/service"
	"github.com/Astemirdum/lending-registry/lending/internal/stats"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	ListBook(ctx context.Context, caller model.Caller, req model.ListBookRequest) (model.BookRecord, error)
	DonateBook(ctx context.Context, caller model.Caller, req model.DonateBookRequest) (model.BookRecord, error)
	BorrowBook(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error)
	ReturnBook(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error)
	RemoveBook(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error)
	UpdateLendingPrice(ctx context.Context, caller model.Caller, id, price uint64) (model.BookRecord, error)
	ChangeBookTitle(ctx context.Context, caller model.Caller, id uint64, title string) (model.BookRecord, error)

	SetLendingFee(ctx context.Context, caller model.Caller, pct uint64) (model.Params, error)
	SetMaxLendingPeriod(ctx context.Context, caller model.Caller, blocks uint64) (model.Params, error)
	SetDepositRequirement(ctx context.Context, caller model.Caller, amount uint64) (model.Params, error)
	SetMaxBooksPerUser(ctx context.Context, caller model.Caller, n uint64) (model.Params, error)
	CreditAccount(ctx context.Context, caller model.Caller, id model.Identity, amount uint64) (uint64, error)

	GetBookDetails(ctx context.Context, id uint64) (model.BookRecord, error)
	CheckBookStatus(ctx context.Context, id uint64) (model.Status, error)
	IsBookBorrowed(ctx context.Context, id uint64) (bool, error)
	IsBookBorrowable(ctx context.Context, id uint64) (bool, error)
	GetBorrowerDetails(ctx context.Context, caller model.Caller, id uint64) (*model.BorrowerDetails, error)
	GetUserBooks(ctx context.Context, id model.Identity) model.UserAccount
	ListUserBooks(ctx context.Context, id model.Identity) []model.BookRecord
	GetUserDeposit(ctx context.Context, id model.Identity) uint64
	GetBalance(ctx context.Context, id model.Identity) (uint64, error)
	GetTotalBooks(ctx context.Context) uint64
	GetParams(ctx context.Context) model.Params
	IsOperator(id model.Identity) bool
}

type StatsService interface {
	GetStats(ctx context.Context) (stats.StatsInfo, error)
}

type BlockSource interface {
	Height() uint64
}

var _ LendingService = (*service.Service)(nil)
