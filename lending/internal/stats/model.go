package stats

type Stats struct {
	Identity   string `json:"identity" db:"identity"`
	Listed     int64  `json:"listed" db:"listed"`
	Donated    int64  `json:"donated" db:"donated"`
	Borrowed   int64  `json:"borrowed" db:"borrowed"`
	Returned   int64  `json:"returned" db:"returned"`
	Removed    int64  `json:"removed" db:"removed"`
	FeesPaid   int64  `json:"feesPaid" db:"fees_paid"`
	PricePaid  int64  `json:"pricePaid" db:"price_paid"`
	EarnedRent int64  `json:"earnedRent" db:"earned_rent"`
}

type StatsInfo struct {
	Data []Stats `json:"data"`
}
