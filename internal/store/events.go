package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blocktix/internal/catalog"
)

const eventColumns = `id, title, description, date, location, location_details, image,
	       price, available_tickets, total_tickets, category, is_featured, organizer`

// ListEvents returns the full catalog. Filtering, sorting, and pagination
// are left to the client.
func (s *Store) ListEvents(ctx context.Context) ([]catalog.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	var events []catalog.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// GetEvent returns a single event by id.
func (s *Store) GetEvent(ctx context.Context, id string) (catalog.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id)

	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Event{}, ErrEventNotFound
		}
		return catalog.Event{}, fmt.Errorf("select event: %w", err)
	}

	return ev, nil
}

// CreateEvent inserts a catalog record. Used by the bootstrap seeding and
// admin tooling; the storefront itself never writes events.
func (s *Store) CreateEvent(ctx context.Context, ev catalog.Event) error {
	if ev.ID == "" || ev.Title == "" {
		return ErrMissingFields
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, date, location, location_details,
		                    image, price, available_tickets, total_tickets, category,
		                    is_featured, organizer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, ev.ID, ev.Title, ev.Description, ev.Date, ev.Location, ev.LocationDetails,
		ev.Image, ev.Price, ev.AvailableTickets, ev.TotalTickets, ev.Category,
		ev.IsFeatured, ev.Organizer)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// EventCount reports how many events exist, used to decide whether to seed.
func (s *Store) EventCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (catalog.Event, error) {
	var (
		ev              catalog.Event
		locationDetails sql.NullString
	)
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.Location, &locationDetails,
		&ev.Image, &ev.Price, &ev.AvailableTickets, &ev.TotalTickets, &ev.Category,
		&ev.IsFeatured, &ev.Organizer,
	)
	if err != nil {
		return catalog.Event{}, err
	}
	ev.LocationDetails = locationDetails.String
	return ev, nil
}
