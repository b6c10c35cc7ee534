package storefront

import (
	"context"
	"sync"

	"blocktix/internal/catalog"
)

// CatalogSource is the slice of the API a view needs to read the catalog.
type CatalogSource interface {
	ListEvents(ctx context.Context) ([]catalog.Event, error)
	GetEvent(ctx context.Context, id string) (catalog.Event, error)
}

// BrowseView owns the discovery flow: one catalog snapshot plus the filter
// criteria narrowing it. Criteria changes re-derive from the latest loaded
// snapshot without refetching; when loads race, the snapshot belonging to
// the newest request wins and stale responses are dropped.
type BrowseView struct {
	source CatalogSource

	mu         sync.Mutex
	generation uint64
	events     []catalog.Event
	criteria   catalog.Criteria
	loaded     bool
	err        error
	closed     bool
}

// NewBrowseView builds a view over the given source. Events are ordered by
// soonest date first until the criteria change.
func NewBrowseView(source CatalogSource) *BrowseView {
	return &BrowseView{
		source:   source,
		criteria: catalog.Criteria{Category: catalog.CategoryAll, Sort: catalog.SortDateAsc},
	}
}

// Load fetches the catalog. A response that resolves after a newer Load was
// issued, or after Close, is silently discarded.
func (v *BrowseView) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	events, err := v.source.ListEvents(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.generation {
		// A newer request owns the view now.
		return nil
	}
	if err != nil {
		v.err = err
		return err
	}
	v.events = events
	v.loaded = true
	v.err = nil
	return nil
}

// Retry re-issues the load after a failure.
func (v *BrowseView) Retry(ctx context.Context) error {
	return v.Load(ctx)
}

// SetSearch updates the search term.
func (v *BrowseView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Search = term
}

// SetCategory updates the category filter.
func (v *BrowseView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Category = category
}

// SetSort updates the sort key.
func (v *BrowseView) SetSort(key catalog.SortKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Sort = key
}

// Criteria returns the current filter settings.
func (v *BrowseView) Criteria() catalog.Criteria {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.criteria
}

// Events returns the visible subset in order, derived fresh from the latest
// snapshot and criteria on every call.
func (v *BrowseView) Events() []catalog.Event {
	v.mu.Lock()
	events := v.events
	criteria := v.criteria
	v.mu.Unlock()
	return catalog.Apply(events, criteria)
}

// Categories lists "all" plus the distinct categories of the loaded
// catalog.
func (v *BrowseView) Categories() []string {
	v.mu.Lock()
	events := v.events
	v.mu.Unlock()
	return catalog.Categories(events)
}

// Loaded reports whether a catalog snapshot has arrived.
func (v *BrowseView) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Err returns the load error, if the last load failed.
func (v *BrowseView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Close marks the view as navigated away; any in-flight response is
// dropped when it arrives.
func (v *BrowseView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
