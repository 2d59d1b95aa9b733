package api

type EventCosts struct {
	Meat   float64 `json:"meat"`
	Rental float64 `json:"rental"`
	Others float64 `json:"others"`
}

type BarbecueEvent struct {
	ID                 string      `json:"id"`
	DateString         string      `json:"dateString"`
	Timestamp          int64       `json:"timestamp"`
	Description        string      `json:"description"`
	Participants       []string    `json:"participants"`
	Costs              *EventCosts `json:"costs"`
	UseCashBalance     bool        `json:"useCashBalance"`
	CashBalanceUsed    float64     `json:"cashBalanceUsed"`
	FinalCostPerPerson float64     `json:"finalCostPerPerson"`
}

// CreateEventRequest records an event. CashBalanceUsed is ignored unless
// UseCashBalance is set. A zero Timestamp means now.
type CreateEventRequest struct {
	Description     string      `json:"description"`
	Participants    []string    `json:"participants"`
	Costs           *EventCosts `json:"costs"`
	UseCashBalance  bool        `json:"useCashBalance"`
	CashBalanceUsed float64     `json:"cashBalanceUsed"`
	Timestamp       int64       `json:"timestamp,omitempty"`
}

type CreateEventResponse struct {
	Event *BarbecueEvent `json:"event"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	// Events are newest first.
	Events []*BarbecueEvent `json:"events"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}
