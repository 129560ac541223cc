package projections

import (
	"context"

	"gymdesk/internal/adapters/storage/member"
)

// DefaultPageSize bounds member-list pages when the caller does not choose.
const DefaultPageSize = 25

// GetMemberListQuery carries query parameters for the member list page.
type GetMemberListQuery struct {
	Status  string // empty = all
	Search  string // matches name or email
	Sort    string
	Dir     string
	Page    int // 1-based
	PerPage int
}

// MemberRow is one line of the member list, with the plan name resolved.
type MemberRow struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Status         string
	MembershipName string // empty when no plan assigned
	RegisteredAt   string
}

// GetMemberListResult carries the query result with pagination totals.
type GetMemberListResult struct {
	Members    []MemberRow
	Total      int
	Page       int
	TotalPages int
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	MemberStore     MemberStore
	MembershipStore MembershipStore
}

// QueryGetMemberList retrieves a page of members with their plan names.
// PRE: Valid query parameters
// POST: Returns the requested page plus totals for pagination controls
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, deps GetMemberListDeps) (GetMemberListResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 {
		query.PerPage = DefaultPageSize
	}

	filter := member.ListFilter{
		Status: query.Status,
		Search: query.Search,
		Sort:   query.Sort,
		Dir:    query.Dir,
		Limit:  query.PerPage,
		Offset: (query.Page - 1) * query.PerPage,
	}

	total, err := deps.MemberStore.Count(ctx, filter)
	if err != nil {
		return GetMemberListResult{}, err
	}

	members, err := deps.MemberStore.List(ctx, filter)
	if err != nil {
		return GetMemberListResult{}, err
	}

	// Resolve plan names in one pass
	plans, err := deps.MembershipStore.List(ctx)
	if err != nil {
		return GetMemberListResult{}, err
	}
	planNames := make(map[string]string, len(plans))
	for _, p := range plans {
		planNames[p.ID] = p.Name
	}

	rows := make([]MemberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, MemberRow{
			ID:             m.ID,
			Name:           m.FullName(),
			Email:          m.Email,
			Phone:          m.Phone,
			Status:         m.Status,
			MembershipName: planNames[m.MembershipID],
			RegisteredAt:   m.RegisteredAt,
		})
	}

	totalPages := (total + query.PerPage - 1) / query.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	return GetMemberListResult{
		Members:    rows,
		Total:      total,
		Page:       query.Page,
		TotalPages: totalPages,
	}, nil
}
