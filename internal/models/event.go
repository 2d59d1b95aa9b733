package models

// EventCosts is the itemized cost breakdown of a barbecue.
type EventCosts struct {
	Meat   float64 `json:"meat"`
	Rental float64 `json:"rental"`
	Others float64 `json:"others"`
}

// Total returns the sum of all categories.
func (c EventCosts) Total() float64 {
	return c.Meat + c.Rental + c.Others
}

// BarbecueEvent represents a cost-shared social event.
// The ledger is append-only, newest first.
type BarbecueEvent struct {
	ID          string `json:"id"`
	DateString  string `json:"dateString"`
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`

	// Participants holds player ids.
	Participants []string `json:"participants"`

	Costs EventCosts `json:"costs"`

	// UseCashBalance marks events partly funded from the shared cash.
	UseCashBalance bool `json:"useCashBalance"`

	// CashBalanceUsed is the amount drawn from the shared cash.
	CashBalanceUsed float64 `json:"cashBalanceUsed"`

	// FinalCostPerPerson is the per-head share after the cash draw.
	FinalCostPerPerson float64 `json:"finalCostPerPerson"`
}

// HasParticipant reports whether the player takes part in the event.
func (e BarbecueEvent) HasParticipant(playerID string) bool {
	for _, id := range e.Participants {
		if id == playerID {
			return true
		}
	}
	return false
}
