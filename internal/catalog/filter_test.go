package catalog

import (
	"reflect"
	"testing"
	"time"
)

func fixtureEvents() []Event {
	date := func(value string) time.Time {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			panic(err)
		}
		return t
	}

	return []Event{
		{ID: "1", Title: "Blockchain Developer Conference", Location: "San Francisco, CA", Date: date("2025-06-15T09:00:00Z"), Price: 0.05, AvailableTickets: 120, TotalTickets: 300, Category: "conference", IsFeatured: true, Organizer: "Blockchain Developers Association"},
		{ID: "2", Title: "Crypto Music Festival", Location: "Austin, TX", Date: date("2025-07-22T16:00:00Z"), Price: 0.15, AvailableTickets: 850, TotalTickets: 2000, Category: "music", IsFeatured: true, Organizer: "Crypto Entertainment Group"},
		{ID: "3", Title: "NFT Art Exhibition", Location: "New York, NY", Date: date("2025-05-10T10:00:00Z"), Price: 0.02, AvailableTickets: 75, TotalTickets: 200, Category: "art", Organizer: "Digital Art Collective"},
		{ID: "4", Title: "Web3 Startup Pitch Competition", Location: "Miami, FL", Date: date("2025-08-05T13:00:00Z"), Price: 0.03, AvailableTickets: 150, TotalTickets: 300, Category: "business", Organizer: "Web3 Founders Club"},
		{ID: "5", Title: "Polygon Hackathon", Location: "Berlin, Germany", Date: date("2025-09-18T09:00:00Z"), Price: 0.01, AvailableTickets: 50, TotalTickets: 200, Category: "hackathon", IsFeatured: true, Organizer: "Polygon Foundation"},
		{ID: "6", Title: "Crypto Sports Cup", Location: "Los Angeles, CA", Date: date("2025-10-05T14:00:00Z"), Price: 0.05, AvailableTickets: 1000, TotalTickets: 5000, Category: "sports", Organizer: "Crypto Gaming League"},
		{ID: "7", Title: "DeFi Summit", Location: "Singapore", Date: date("2025-04-12T08:00:00Z"), Price: 0.08, AvailableTickets: 0, TotalTickets: 500, Category: "finance", Organizer: "Global DeFi Association"},
		{ID: "8", Title: "Blockchain Film Festival", Location: "Toronto, Canada", Date: date("2025-11-20T18:00:00Z"), Price: 0.02, AvailableTickets: 200, TotalTickets: 300, Category: "entertainment", Organizer: "Crypto Cinema Collective"},
	}
}

func ids(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.ID)
	}
	return out
}

func TestApplySearchMatchesTitleOrLocation(t *testing.T) {
	events := fixtureEvents()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "location match", search: "Berlin", wantIDs: []string{"5"}},
		{name: "case insensitive", search: "berlin", wantIDs: []string{"5"}},
		{name: "title match", search: "defi", wantIDs: []string{"7"}},
		{name: "shared substring", search: "crypto", wantIDs: []string{"2", "6"}},
		{name: "empty matches all in input order", search: "", wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "no match", search: "zanzibar", wantIDs: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(events, Criteria{Search: tc.search}))
			if !reflect.DeepEqual(got, tc.wantIDs) {
				t.Fatalf("got %v, want %v", got, tc.wantIDs)
			}
		})
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	events := fixtureEvents()

	if got := ids(Apply(events, Criteria{Category: "music"})); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("category filter got %v", got)
	}
	if got := Apply(events, Criteria{Category: CategoryAll}); len(got) != len(events) {
		t.Fatalf("category %q should match everything, got %d events", CategoryAll, len(got))
	}
	if got := Apply(events, Criteria{}); len(got) != len(events) {
		t.Fatalf("empty category should match everything, got %d events", len(got))
	}
}

func TestApplyCombinesFiltersWithAnd(t *testing.T) {
	events := fixtureEvents()

	got := ids(Apply(events, Criteria{Search: "crypto", Category: "sports"}))
	if !reflect.DeepEqual(got, []string{"6"}) {
		t.Fatalf("got %v, want [6]", got)
	}
}

func TestApplySortByDate(t *testing.T) {
	events := fixtureEvents()

	asc := Apply(events, Criteria{Sort: SortDateAsc})
	if asc[0].ID != "7" || asc[len(asc)-1].ID != "8" {
		t.Fatalf("date-asc should order April (DeFi Summit) first and November (Film Festival) last, got %v", ids(asc))
	}

	desc := Apply(events, Criteria{Sort: SortDateDesc})
	if desc[0].ID != "8" || desc[len(desc)-1].ID != "7" {
		t.Fatalf("date-desc got %v", ids(desc))
	}
}

func TestApplySortByPriceIsStable(t *testing.T) {
	events := fixtureEvents()

	// IDs 1 and 6 share price 0.05; IDs 3 and 8 share 0.02. Stable sort
	// must keep their relative input order.
	got := ids(Apply(events, Criteria{Sort: SortPriceAsc}))
	want := []string{"5", "3", "8", "4", "1", "6", "7", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("price-asc got %v, want %v", got, want)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	events := fixtureEvents()

	criteria := []Criteria{
		{},
		{Search: "crypto"},
		{Category: "music"},
		{Sort: SortPriceDesc},
		{Search: "c", Category: CategoryAll, Sort: SortDateAsc},
	}

	for _, c := range criteria {
		once := Apply(events, c)
		twice := Apply(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("apply not idempotent for %+v: %v != %v", c, ids(once), ids(twice))
		}
	}
}

func TestApplySearchMonotonicity(t *testing.T) {
	events := fixtureEvents()

	// Growing the search term can only shrink the result set.
	prev := len(events)
	for _, term := range []string{"c", "cr", "cry", "cryp", "crypto"} {
		n := len(Apply(events, Criteria{Search: term}))
		if n > prev {
			t.Fatalf("search %q grew the result set from %d to %d", term, prev, n)
		}
		prev = n
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	events := fixtureEvents()
	original := fixtureEvents()

	Apply(events, Criteria{Search: "crypto", Category: "music", Sort: SortPriceDesc})

	if !reflect.DeepEqual(events, original) {
		t.Fatal("apply mutated the input catalog")
	}
}

func TestCategories(t *testing.T) {
	events := fixtureEvents()

	got := Categories(events)
	want := []string{"all", "conference", "music", "art", "business", "hackathon", "sports", "finance", "entertainment"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := Categories(nil); !reflect.DeepEqual(got, []string{"all"}) {
		t.Fatalf("empty catalog should still list %q, got %v", CategoryAll, got)
	}

	duplicated := append(events, events...)
	if got := Categories(duplicated); !reflect.DeepEqual(got, want) {
		t.Fatalf("duplicates should collapse, got %v", got)
	}
}
