package memory

import (
	"context"
	"strings"
	"testing"
)

func TestCatalog_GeneratesFixedCountPerState(t *testing.T) {
	catalog := NewCatalog(1)

	stores, err := catalog.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	perState := make(map[string]int)
	for _, st := range stores {
		perState[st.State]++
	}
	if len(perState) != len(indianStates) {
		t.Fatalf("expected %d states, got %d", len(indianStates), len(perState))
	}
	for state, n := range perState {
		if n != storesPerState {
			t.Fatalf("state %s has %d stores, want %d", state, n, storesPerState)
		}
	}
	if len(stores) != len(indianStates)*storesPerState {
		t.Fatalf("expected %d stores total, got %d", len(indianStates)*storesPerState, len(stores))
	}
}

func TestCatalog_StoreShape(t *testing.T) {
	catalog := NewCatalog(1)
	stores, _ := catalog.All(context.Background())

	for _, st := range stores {
		if st.OverallRating < 3.0 || st.OverallRating > 5.0 {
			t.Fatalf("overall rating out of range: %+v", st)
		}
		if st.UserRating < 0 || st.UserRating > 5 {
			t.Fatalf("user rating out of range: %+v", st)
		}
		if st.TotalRatings < 20 || st.TotalRatings > 519 {
			t.Fatalf("total ratings out of range: %+v", st)
		}
		if !strings.HasSuffix(st.Name, " "+st.Category) {
			t.Fatalf("name %q does not carry category %q", st.Name, st.Category)
		}
		if !strings.Contains(st.Address, st.City) || !strings.Contains(st.Address, st.State) {
			t.Fatalf("address %q missing city/state", st.Address)
		}
	}
}

func TestCatalog_FirstStoreID(t *testing.T) {
	catalog := NewCatalog(1)
	stores, _ := catalog.All(context.Background())

	// cities iterate in reference order, so Mumbai leads the catalog
	if stores[0].ID != "maharashtra-mumbai-1" {
		t.Fatalf("unexpected first id: %s", stores[0].ID)
	}
	if stores[0].City != "Mumbai" || stores[0].State != "Maharashtra" {
		t.Fatalf("unexpected first store: %+v", stores[0])
	}
}

func TestCatalog_DeterministicForFixedSeed(t *testing.T) {
	a, _ := NewCatalog(42).All(context.Background())
	b, _ := NewCatalog(42).All(context.Background())

	if len(a) != len(b) {
		t.Fatalf("lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("store %d differs between identically seeded catalogs", i)
		}
	}
}

func TestCatalog_FindByID(t *testing.T) {
	catalog := NewCatalog(1)

	store, err := catalog.FindByID(context.Background(), "karnataka-bangalore-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if store.City != "Bangalore" {
		t.Fatalf("unexpected store: %+v", store)
	}

	if _, err := catalog.FindByID(context.Background(), "nowhere-1"); err == nil {
		t.Fatalf("expected lookup failure")
	}
}

func TestCatalog_States(t *testing.T) {
	catalog := NewCatalog(1)

	states, err := catalog.States(context.Background())
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if len(states) != 10 {
		t.Fatalf("expected 10 states, got %d", len(states))
	}
	for _, s := range states {
		if len(s.Cities) != 8 {
			t.Fatalf("state %s has %d cities, want 8", s.Name, len(s.Cities))
		}
	}
}
