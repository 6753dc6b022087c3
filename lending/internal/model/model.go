package model

import (
	"encoding/json"
)

// Identity is an authenticated principal.
type Identity = string

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBorrowed  Status = "BORROWED"
	StatusInactive  Status = "INACTIVE"
)

// Loan exists only while a book is borrowed.
type Loan struct {
	Borrower    Identity `json:"borrower"`
	BorrowBlock uint64   `json:"borrowBlock"`
	DueBlock    uint64   `json:"dueBlock"`
	Deposit     uint64   `json:"deposit"`
}

// State is the lifecycle state of a book. The loan is carried only by the
// borrowed state, so a borrower without the Borrowed status cannot be built.
type State struct {
	status Status
	loan   *Loan
}

func Available() State { return State{status: StatusAvailable} }

func Inactive() State { return State{status: StatusInactive} }

func Borrowed(loan Loan) State { return State{status: StatusBorrowed, loan: &loan} }

func (s State) Status() Status { return s.status }

// Loan reports the loan of a borrowed book.
func (s State) Loan() (Loan, bool) {
	if s.loan == nil {
		return Loan{}, false
	}
	return *s.loan, true
}

// BookRecord is one unit of lending inventory. Donated records belong to the
// operator and do not count against any listing limit.
type BookRecord struct {
	ID           uint64   `json:"id"`
	Owner        Identity `json:"owner"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	LendingPrice uint64   `json:"lendingPrice"`
	Donated      bool     `json:"donated"`
	State        State    `json:"-"`
}

func (b BookRecord) Status() Status { return b.State.Status() }

// Borrower returns the current borrower, if any.
func (b BookRecord) Borrower() (Identity, bool) {
	loan, ok := b.State.Loan()
	return loan.Borrower, ok
}

type bookJSON struct {
	ID           uint64   `json:"id"`
	Owner        Identity `json:"owner"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	LendingPrice uint64   `json:"lendingPrice"`
	Donated      bool     `json:"donated"`
	Status       Status   `json:"status"`
	Borrower     *string  `json:"borrower"`
	BorrowBlock  *uint64  `json:"borrowBlock"`
}

func (b BookRecord) MarshalJSON() ([]byte, error) {
	out := bookJSON{
		ID:           b.ID,
		Owner:        b.Owner,
		Title:        b.Title,
		Author:       b.Author,
		LendingPrice: b.LendingPrice,
		Donated:      b.Donated,
		Status:       b.State.Status(),
	}
	if loan, ok := b.State.Loan(); ok {
		out.Borrower = &loan.Borrower
		out.BorrowBlock = &loan.BorrowBlock
	}
	return json.Marshal(out)
}

// UserAccount counts an identity's active listings and open loans.
type UserAccount struct {
	BookCount     uint64 `json:"bookCount"`
	BorrowedCount uint64 `json:"borrowedCount"`
}

type Params struct {
	LendingFeePercent  uint64   `json:"lendingFeePercent"`
	MaxLendingPeriod   uint64   `json:"maxLendingPeriod"`
	DepositRequirement uint64   `json:"depositRequirement"`
	MaxBooksPerUser    uint64   `json:"maxBooksPerUser"`
	TotalBooks         uint64   `json:"totalBooks"`
	Operator           Identity `json:"operator"`
}

// Caller is the context every operation runs in: who calls and at which block.
type Caller struct {
	Identity Identity
	Block    uint64
}

type BorrowerDetails struct {
	Borrower    Identity `json:"borrower"`
	BorrowBlock uint64   `json:"borrowBlock"`
	DueBlock    uint64   `json:"dueBlock"`
	Deposit     uint64   `json:"deposit"`
	Overdue     bool     `json:"overdue"`
}
