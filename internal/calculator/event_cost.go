package calculator

import (
	"errors"

	"github.com/mmynk/futmanager/internal/models"
)

var (
	// ErrNoParticipants is returned for events without participants.
	ErrNoParticipants = errors.New("must have at least one participant")

	// ErrInvalidCashDraw is returned when the cash draw is negative or larger
	// than the event's total cost.
	ErrInvalidCashDraw = errors.New("cash draw must be between zero and the event total")

	// ErrNegativeCost is returned when any cost category is negative.
	ErrNegativeCost = errors.New("event costs cannot be negative")
)

// CalculateEventCost computes the per-head share of an event.
// Based on: per_person = (meat + rental + others - cash_draw) / participants
// The cash draw only applies when useCash is set.
func CalculateEventCost(costs models.EventCosts, participants int, useCash bool, cashDraw float64) (float64, error) {
	if participants <= 0 {
		return 0, ErrNoParticipants
	}
	if costs.Meat < 0 || costs.Rental < 0 || costs.Others < 0 {
		return 0, ErrNegativeCost
	}

	total := costs.Total()
	if !useCash {
		return total / float64(participants), nil
	}
	if cashDraw < 0 || cashDraw > total {
		return 0, ErrInvalidCashDraw
	}
	return (total - cashDraw) / float64(participants), nil
}
