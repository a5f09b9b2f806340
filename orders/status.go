package orders

import (
	"errors"
	"time"

	"techzone/models"
)

const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var (
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrForbiddenTransition = errors.New("status transition not allowed")
)

// transitions is the order workflow. It currently permits every move
// between known statuses, matching the admin UI's free status picker;
// tightening the workflow later is an edit here, not new code.
var transitions = map[string][]string{
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:    {StatusProcessing, StatusDelivered, StatusCancelled},
	StatusDelivered:  {StatusProcessing, StatusShipped, StatusCancelled},
	StatusCancelled:  {StatusProcessing, StatusShipped, StatusDelivered},
}

func ValidStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition applies a status change and appends it to the order's
// history. The history is append-only; nothing ever rewrites past
// entries.
func Transition(order *models.Order, to, by string) error {
	if !ValidStatus(to) {
		return ErrUnknownStatus
	}
	if !CanTransition(order.Status, to) {
		return ErrForbiddenTransition
	}

	order.History = append(order.History, models.StatusChange{
		From: order.Status,
		To:   to,
		By:   by,
		At:   time.Now(),
	})
	order.Status = to
	return nil
}
