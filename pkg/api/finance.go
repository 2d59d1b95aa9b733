package api

type FinancialSettings struct {
	MonthlyFee      float64 `json:"monthlyFee"`
	PerGameFee      float64 `json:"perGameFee"`
	CourtRentalCost float64 `json:"courtRentalCost"`
}

type EventCharge struct {
	EventID     string  `json:"eventId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Key         string  `json:"key"`
	Paid        bool    `json:"paid"`
}

// PlayerStatement is one player's obligations in a month.
type PlayerStatement struct {
	PlayerID    string         `json:"playerId"`
	PlayerName  string         `json:"playerName"`
	Type        string         `json:"type"`
	Active      bool           `json:"active"`
	SponsorID   string         `json:"sponsorId,omitempty"`
	SponsorName string         `json:"sponsorName,omitempty"`
	GamesPlayed int            `json:"gamesPlayed"`
	AmountDue   float64        `json:"amountDue"`
	Key         string         `json:"key"`
	Paid        bool           `json:"paid"`
	Events      []*EventCharge `json:"events,omitempty"`
}

type MonthlyReport struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	Members        []*PlayerStatement `json:"members"`
	Guests         []*PlayerStatement `json:"guests"`
	TotalExpected  float64            `json:"totalExpected"`
	TotalCollected float64            `json:"totalCollected"`
	CashBalance    float64            `json:"cashBalance"`
}

// GetMonthlyReportRequest selects a month (1-12). A zero Year means the
// current month.
type GetMonthlyReportRequest struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

type GetMonthlyReportResponse struct {
	Report *MonthlyReport `json:"report"`
}

// TogglePaymentRequest flips one obligation key: "{year}-{monthIndex}-{playerId}"
// with a 0-based month index, or "BBQ-{eventId}-{playerId}".
type TogglePaymentRequest struct {
	Key string `json:"key"`
}

type TogglePaymentResponse struct {
	Key  string `json:"key"`
	Paid bool   `json:"paid"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *FinancialSettings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings *FinancialSettings `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings *FinancialSettings `json:"settings"`
}
