package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateContactSubmission(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("INSERT INTO contact_submissions").
		WithArgs(sqlmock.AnyArg(), "Ada", "ada@example.com", "Tickets", "Hello there").
		WillReturnRows(sqlmock.NewRows([]string{"submitted_at"}).AddRow(time.Now()))

	sub, err := s.CreateContactSubmission(context.Background(), "Ada", "ada@example.com", "Tickets", "Hello there")
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}
	if sub.ID == "" {
		t.Fatal("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateContactSubmissionValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	tests := []struct {
		name      string
		submitter string
		email     string
		message   string
	}{
		{name: "missing name", email: "a@b.c", message: "hi"},
		{name: "missing email", submitter: "Ada", message: "hi"},
		{name: "missing message", submitter: "Ada", email: "a@b.c"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateContactSubmission(context.Background(), tc.submitter, tc.email, "", tc.message)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("got %v, want ErrMissingFields", err)
			}
		})
	}
}
