package projections

import (
	"context"
	"time"

	"gymdesk/internal/adapters/storage/member"
	domainAttendance "gymdesk/internal/domain/attendance"
	domainMember "gymdesk/internal/domain/member"
	domainMembership "gymdesk/internal/domain/membership"
	domainPayment "gymdesk/internal/domain/payment"
)

// MemberStore interface for member queries.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (domainMember.Member, error)
	List(ctx context.Context, filter member.ListFilter) ([]domainMember.Member, error)
	Count(ctx context.Context, filter member.ListFilter) (int, error)
}

// MembershipStore interface for plan queries.
type MembershipStore interface {
	List(ctx context.Context) ([]domainMembership.Type, error)
}

// PaymentStore interface for payment queries.
type PaymentStore interface {
	ListByMember(ctx context.Context, memberID string) ([]domainPayment.Payment, error)
	CountOutstanding(ctx context.Context, memberID, today string) (int, error)
}

// AttendanceStore interface for attendance queries.
type AttendanceStore interface {
	ListByMember(ctx context.Context, memberID string) ([]domainAttendance.Attendance, error)
	CountForMonth(ctx context.Context, memberID string, year int, month time.Month) (int, error)
}
