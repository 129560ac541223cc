package payment

import (
	"errors"
	"time"
)

// dateLayout is the storage format for payment and due dates.
const dateLayout = "2006-01-02"

// DueDateGraceDays is how long after the payment date the next payment
// falls due.
const DueDateGraceDays = 30

// Payment status constants.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

// Payment methods accepted at the front desk.
const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
)

// Domain errors
var (
	ErrEmptyMemberID     = errors.New("payment member_id is required")
	ErrEmptyMembershipID = errors.New("payment membership_id is required")
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrInvalidStatus     = errors.New("payment status must be 'paid', 'pending', or 'overdue'")
	ErrInvalidDate       = errors.New("payment date format is invalid")
)

// Payment is a billing record tied to a member and a membership type.
type Payment struct {
	ID           string
	MemberID     string
	MembershipID string
	Amount       float64
	Method       string
	PaymentDate  string // YYYY-MM-DD
	DueDate      string // YYYY-MM-DD
	Status       string
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Amount > 0, dates parse as YYYY-MM-DD, status from allowed set
func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return ErrEmptyMemberID
	}
	if p.MembershipID == "" {
		return ErrEmptyMembershipID
	}
	if p.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if p.Status != StatusPaid && p.Status != StatusPending && p.Status != StatusOverdue {
		return ErrInvalidStatus
	}
	if _, err := time.Parse(dateLayout, p.PaymentDate); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, p.DueDate); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// IsOutstanding returns true for payments that still block the member:
// pending or overdue.
// INVARIANT: Status field is not mutated
func (p *Payment) IsOutstanding() bool {
	return p.Status == StatusPending || p.Status == StatusOverdue
}

// DueDateFor computes the due date for a payment made on the given date.
// PRE: paymentDate is in YYYY-MM-DD format
// POST: Returns paymentDate + DueDateGraceDays in the same format
func DueDateFor(paymentDate string) (string, error) {
	d, err := time.Parse(dateLayout, paymentDate)
	if err != nil {
		return "", ErrInvalidDate
	}
	return d.AddDate(0, 0, DueDateGraceDays).Format(dateLayout), nil
}
