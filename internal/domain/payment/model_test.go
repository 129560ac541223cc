package payment

import (
	"errors"
	"testing"
)

func validPayment() Payment {
	return Payment{
		ID:           "payment-001",
		MemberID:     "member-001",
		MembershipID: "type-001",
		Amount:       35.50,
		Method:       MethodCash,
		PaymentDate:  "2026-02-10",
		DueDate:      "2026-03-12",
		Status:       StatusPaid,
	}
}

// TestValidate_Valid tests a well-formed payment.
func TestValidate_Valid(t *testing.T) {
	p := validPayment()
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid payment, got %v", err)
	}
}

// TestValidate_MissingMember tests rejection without a member reference.
func TestValidate_MissingMember(t *testing.T) {
	p := validPayment()
	p.MemberID = ""
	if err := p.Validate(); !errors.Is(err, ErrEmptyMemberID) {
		t.Errorf("expected ErrEmptyMemberID, got %v", err)
	}
}

// TestValidate_ZeroAmount tests rejection of a non-positive amount.
func TestValidate_ZeroAmount(t *testing.T) {
	p := validPayment()
	p.Amount = 0
	if err := p.Validate(); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("expected ErrNonPositiveAmount, got %v", err)
	}
}

// TestValidate_BadStatus tests rejection of an unknown status.
func TestValidate_BadStatus(t *testing.T) {
	p := validPayment()
	p.Status = "refunded"
	if err := p.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

// TestValidate_BadDate tests rejection of a malformed payment date.
func TestValidate_BadDate(t *testing.T) {
	p := validPayment()
	p.PaymentDate = "10/02/2026"
	if err := p.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

// TestIsOutstanding tests the outstanding-status check.
func TestIsOutstanding(t *testing.T) {
	p := validPayment()
	if p.IsOutstanding() {
		t.Error("paid payment should not be outstanding")
	}
	p.Status = StatusPending
	if !p.IsOutstanding() {
		t.Error("pending payment should be outstanding")
	}
	p.Status = StatusOverdue
	if !p.IsOutstanding() {
		t.Error("overdue payment should be outstanding")
	}
}

// TestDueDateFor tests the 30-day due date computation.
func TestDueDateFor(t *testing.T) {
	due, err := DueDateFor("2026-02-10")
	if err != nil {
		t.Fatalf("DueDateFor: %v", err)
	}
	if due != "2026-03-12" {
		t.Errorf("expected due date 2026-03-12, got %s", due)
	}
}

// TestDueDateFor_BadInput tests due date computation with a malformed date.
func TestDueDateFor_BadInput(t *testing.T) {
	if _, err := DueDateFor("not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
