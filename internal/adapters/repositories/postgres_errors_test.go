package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"rail-booking-service/internal/domain"
)

func TestClassifySQLStates(t *testing.T) {
	var (
		conflict   *domain.ConflictError
		validation *domain.ValidationError
		transient  *domain.TransientError
	)

	cases := []struct {
		name   string
		err    error
		target any
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, &conflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503", Message: "fk"}, &validation},
		{"check violation", &pgconn.PgError{Code: "23514", Message: "check"}, &validation},
		{"connection failure", &pgconn.PgError{Code: "08006"}, &transient},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, &transient},
		{"deadline exceeded", context.DeadlineExceeded, &transient},
		{"canceled", context.Canceled, &transient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify("op", tc.err)
			if got == nil {
				t.Fatal("classify returned nil for a failure")
			}
			if !errors.As(got, tc.target) {
				t.Fatalf("classify(%v) = %T, want %T", tc.err, got, tc.target)
			}
		})
	}
}

func TestClassifyWrapsUnrecognizedErrors(t *testing.T) {
	cause := errors.New("boom")

	got := classify("insert station", cause)
	if !errors.Is(got, cause) {
		t.Fatalf("classify did not preserve the cause: %v", got)
	}

	var (
		conflict   *domain.ConflictError
		validation *domain.ValidationError
		transient  *domain.TransientError
	)
	if errors.As(got, &conflict) || errors.As(got, &validation) || errors.As(got, &transient) {
		t.Fatalf("classify typed an unrecognized error: %v", got)
	}
}

func TestClassifyTransientRetainsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "08006", Message: "connection failure"}

	got := classify("search connections", fmt.Errorf("query: %w", cause))

	var transient *domain.TransientError
	if !errors.As(got, &transient) {
		t.Fatalf("classify(%v) = %T, want *domain.TransientError", cause, got)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("transient error lost its cause: %v", got)
	}
}

func TestClassifyNil(t *testing.T) {
	if got := classify("op", nil); got != nil {
		t.Fatalf("classify(nil) = %v, want nil", got)
	}
}
