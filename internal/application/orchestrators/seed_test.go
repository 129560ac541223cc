package orchestrators

import (
	"context"
	"testing"

	"gymdesk/internal/domain/membership"
)

// mockMembershipStoreForSeed implements MembershipStoreForSeed.
type mockMembershipStoreForSeed struct {
	plans []membership.Type
}

func (m *mockMembershipStoreForSeed) Save(_ context.Context, t membership.Type) error {
	m.plans = append(m.plans, t)
	return nil
}

func (m *mockMembershipStoreForSeed) List(_ context.Context) ([]membership.Type, error) {
	return m.plans, nil
}

// TestExecuteSeedMembershipTypes verifies the default plans are created once,
// including one unlimited plan.
func TestExecuteSeedMembershipTypes(t *testing.T) {
	store := &mockMembershipStoreForSeed{}
	deps := SeedMembershipTypesDeps{MembershipStore: store}

	if err := ExecuteSeedMembershipTypes(context.Background(), deps); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if len(store.plans) != 3 {
		t.Fatalf("plans=%d want 3", len(store.plans))
	}

	unlimited := 0
	for _, p := range store.plans {
		if err := p.Validate(); err != nil {
			t.Errorf("seeded plan %q invalid: %v", p.Name, err)
		}
		if !p.HasVisitCap() {
			unlimited++
		}
	}
	if unlimited != 1 {
		t.Errorf("unlimited plans=%d want 1", unlimited)
	}

	if err := ExecuteSeedMembershipTypes(context.Background(), deps); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(store.plans) != 3 {
		t.Errorf("plans=%d after reseed want 3", len(store.plans))
	}
}
