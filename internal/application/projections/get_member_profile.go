package projections

import (
	"context"
	"time"

	domainMember "gymdesk/internal/domain/member"
	domainPayment "gymdesk/internal/domain/payment"
)

// GetMemberProfileQuery carries query parameters for the profile page.
type GetMemberProfileQuery struct {
	MemberID string
}

// CheckIn is one attendance line on the profile page.
type CheckIn struct {
	ID          string
	CheckInTime time.Time
}

// GetMemberProfileResult carries everything the profile page shows: the
// member, their recent billing and attendance, and this month's visit usage.
type GetMemberProfileResult struct {
	Member          domainMember.Member
	Payments        []domainPayment.Payment
	RecentCheckIns  []CheckIn
	VisitsThisMonth int
	Outstanding     int
}

// GetMemberProfileDeps holds dependencies for GetMemberProfile.
type GetMemberProfileDeps struct {
	MemberStore     MemberStore
	PaymentStore    PaymentStore
	AttendanceStore AttendanceStore
	Now             func() time.Time
}

// recentCheckInLimit bounds the attendance list on the profile page.
const recentCheckInLimit = 20

// QueryGetMemberProfile retrieves one member with billing and attendance
// context.
// PRE: MemberID is non-empty
// POST: Returns the member or the store's not-found error
func QueryGetMemberProfile(ctx context.Context, query GetMemberProfileQuery, deps GetMemberProfileDeps) (GetMemberProfileResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, query.MemberID)
	if err != nil {
		return GetMemberProfileResult{}, err
	}

	payments, err := deps.PaymentStore.ListByMember(ctx, query.MemberID)
	if err != nil {
		return GetMemberProfileResult{}, err
	}

	checkIns, err := deps.AttendanceStore.ListByMember(ctx, query.MemberID)
	if err != nil {
		return GetMemberProfileResult{}, err
	}
	recent := make([]CheckIn, 0, recentCheckInLimit)
	for _, a := range checkIns {
		if len(recent) == recentCheckInLimit {
			break
		}
		recent = append(recent, CheckIn{ID: a.ID, CheckInTime: a.CheckInTime})
	}

	now := deps.Now()
	visits, err := deps.AttendanceStore.CountForMonth(ctx, query.MemberID, now.Year(), now.Month())
	if err != nil {
		return GetMemberProfileResult{}, err
	}
	outstanding, err := deps.PaymentStore.CountOutstanding(ctx, query.MemberID, now.Format("2006-01-02"))
	if err != nil {
		return GetMemberProfileResult{}, err
	}

	return GetMemberProfileResult{
		Member:          m,
		Payments:        payments,
		RecentCheckIns:  recent,
		VisitsThisMonth: visits,
		Outstanding:     outstanding,
	}, nil
}
