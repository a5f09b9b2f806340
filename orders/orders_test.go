package orders

import (
	"strings"
	"testing"

	"techzone/models"
)

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []models.OrderItem{
			{ProductID: "1", Name: "Mouse", Price: 100, Quantity: 2},
		},
		Total: 200,
		ContactInfo: models.ContactInfo{
			Name:    "Ada",
			Phone:   "555-0101",
			Address: "1 Example Street",
		},
	}
}

func TestCreateOrderForAuthenticatedUser(t *testing.T) {
	order, err := CreateOrder(validInput(), Authenticated("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.UserID != "u1" {
		t.Fatalf("expected order bound to u1, got %q", order.UserID)
	}
	if !strings.HasPrefix(order.OrderID, "ORD-") {
		t.Fatalf("unexpected order id: %s", order.OrderID)
	}
	if order.Status != StatusProcessing {
		t.Fatalf("new orders start processing, got %s", order.Status)
	}
	if len(order.History) != 1 || order.History[0].To != StatusProcessing {
		t.Fatalf("expected initial history entry, got %+v", order.History)
	}
}

func TestCreateOrderForGuestHasNoUser(t *testing.T) {
	order, err := CreateOrder(validInput(), Guest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.UserID != "" {
		t.Fatalf("guest order must carry no user id, got %q", order.UserID)
	}
	if order.Total != 200 {
		t.Fatalf("expected total 200, got %v", order.Total)
	}
}

func TestCreateOrderComputesMissingTotal(t *testing.T) {
	input := validInput()
	input.Total = 0

	order, err := CreateOrder(input, Guest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 200 {
		t.Fatalf("expected computed total 200, got %v", order.Total)
	}
}

func TestValidateInputRejectsEmptyItems(t *testing.T) {
	input := validInput()
	input.Items = nil

	if msg := validateInput(input); msg == "" {
		t.Fatal("expected empty item list to be rejected")
	}
}

func TestValidateInputRejectsBadItems(t *testing.T) {
	input := validInput()
	input.Items[0].Quantity = 0
	if msg := validateInput(input); msg == "" {
		t.Fatal("expected zero quantity to be rejected")
	}

	input = validInput()
	input.Items[0].ProductID = ""
	if msg := validateInput(input); msg == "" {
		t.Fatal("expected missing product id to be rejected")
	}
}

func TestValidateInputRequiresContactInfo(t *testing.T) {
	input := validInput()
	input.ContactInfo.Address = ""

	if msg := validateInput(input); msg == "" {
		t.Fatal("expected missing address to be rejected")
	}
}

func TestIdentity(t *testing.T) {
	if Authenticated("u1").IsGuest() {
		t.Fatal("authenticated identity is not a guest")
	}
	if !Guest().IsGuest() {
		t.Fatal("guest identity should report IsGuest")
	}
}
