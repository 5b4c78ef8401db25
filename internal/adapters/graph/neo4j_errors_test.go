package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"rail-booking-service/internal/domain"
)

func TestClassifyContextErrorsAreTransient(t *testing.T) {
	for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
		got := classify("create schedule", fmt.Errorf("run query: %w", cause))

		var transient *domain.TransientError
		if !errors.As(got, &transient) {
			t.Fatalf("classify(%v) = %T, want *domain.TransientError", cause, got)
		}
		if !errors.Is(got, cause) {
			t.Fatalf("transient error lost its cause: %v", got)
		}
	}
}

func TestClassifyWrapsDriverErrors(t *testing.T) {
	cause := errors.New("syntax error in cypher")

	got := classify("list schedules", cause)
	if !errors.Is(got, cause) {
		t.Fatalf("classify did not preserve the cause: %v", got)
	}

	var transient *domain.TransientError
	if errors.As(got, &transient) {
		t.Fatalf("driver error misclassified as transient: %v", got)
	}
}

func TestClassifyNil(t *testing.T) {
	if got := classify("op", nil); got != nil {
		t.Fatalf("classify(nil) = %v, want nil", got)
	}
}
