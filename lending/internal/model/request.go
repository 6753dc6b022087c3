package model

type ListBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  uint64 `json:"price"`
}

type DonateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type UpdatePriceRequest struct {
	Price uint64 `json:"price"`
}

type ChangeTitleRequest struct {
	Title string `json:"title"`
}

// ParamRequest carries a single numeric system parameter.
type ParamRequest struct {
	Value *uint64 `json:"value" validate:"required"`
}

type CreditRequest struct {
	Identity Identity `json:"identity" validate:"required"`
	Amount   uint64   `json:"amount" validate:"required,gt=0"`
}

type BookStatusResponse struct {
	ID     uint64 `json:"id"`
	Status Status `json:"status"`
}

type FlagResponse struct {
	ID    uint64 `json:"id"`
	Value bool   `json:"value"`
}

type AmountResponse struct {
	Identity Identity `json:"identity,omitempty"`
	Amount   uint64   `json:"amount"`
}

type TotalResponse struct {
	Total uint64 `json:"total"`
}

type BorrowerResponse struct {
	ID       uint64           `json:"id"`
	Borrower *BorrowerDetails `json:"borrower"`
}
