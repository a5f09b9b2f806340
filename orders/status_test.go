package orders

import (
	"errors"
	"testing"

	"techzone/models"
)

func TestTransitionAppendsHistory(t *testing.T) {
	order := models.Order{OrderID: "ORD-1", Status: StatusProcessing}

	if err := Transition(&order, StatusShipped, "admin1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != StatusShipped {
		t.Fatalf("expected shipped, got %s", order.Status)
	}
	if len(order.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(order.History))
	}
	entry := order.History[0]
	if entry.From != StatusProcessing || entry.To != StatusShipped || entry.By != "admin1" {
		t.Fatalf("unexpected history entry: %+v", entry)
	}
	if entry.At.IsZero() {
		t.Fatal("history entry should carry a timestamp")
	}
}

func TestTransitionHistoryIsAppendOnly(t *testing.T) {
	order := models.Order{OrderID: "ORD-1", Status: StatusProcessing}

	_ = Transition(&order, StatusShipped, "admin1")
	_ = Transition(&order, StatusDelivered, "admin1")

	if len(order.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(order.History))
	}
	if order.History[0].To != StatusShipped {
		t.Fatalf("earlier entry was rewritten: %+v", order.History[0])
	}
}

func TestTransitionCancelFromProcessing(t *testing.T) {
	order := models.Order{Status: StatusProcessing}

	if err := Transition(&order, StatusCancelled, "admin1"); err != nil {
		t.Fatalf("processing to cancelled should be allowed: %v", err)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	order := models.Order{Status: StatusProcessing}

	err := Transition(&order, "lost-in-transit", "admin1")
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if order.Status != StatusProcessing || len(order.History) != 0 {
		t.Fatalf("failed transition must not touch the order: %+v", order)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidStatus("pending") {
		t.Fatal("pending is not a known status")
	}
}

func TestCanTransitionSelfLoop(t *testing.T) {
	if !CanTransition(StatusShipped, StatusShipped) {
		t.Fatal("re-asserting the current status should be allowed")
	}
}
