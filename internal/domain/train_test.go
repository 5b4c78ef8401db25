package domain

import (
	"errors"
	"testing"
)

func TestTrainStatusRoundTrip(t *testing.T) {
	statuses := []TrainStatus{
		StatusNotArrived,
		StatusArrived,
		StatusInTransit,
		StatusDelayed,
		StatusCancelled,
		StatusArchived,
	}

	for _, s := range statuses {
		parsed, err := ParseTrainStatus(s.String())
		if err != nil {
			t.Fatalf("ParseTrainStatus(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("round trip %q = %v, want %v", s.String(), parsed, s)
		}
	}
}

func TestTrainStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseTrainStatus("LOST"); err == nil {
		t.Errorf("expected error for unknown status name")
	}

	_, err := TrainStatusFromInt(99)
	if err == nil {
		t.Fatalf("expected error for out-of-set integer")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("error = %T, want *ValidationError", err)
	}
}
