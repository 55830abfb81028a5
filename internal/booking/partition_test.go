package booking

import (
	"testing"
	"time"

	"agendly-backend/internal/models"
	"github.com/google/uuid"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func appt(status string, offset time.Duration) models.Appointment {
	return models.Appointment{
		ID:          uuid.New(),
		Status:      status,
		ScheduledAt: now.Add(offset),
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name   string
		status string
		offset time.Duration
		want   bool
	}{
		{"pending future", models.StatusPending, time.Hour, true},
		{"confirmed future", models.StatusConfirmed, 24 * time.Hour, true},
		{"pending exactly now", models.StatusPending, 0, true},
		{"pending past", models.StatusPending, -time.Hour, false},
		{"confirmed past", models.StatusConfirmed, -time.Minute, false},
		{"cancelled future", models.StatusCancelled, time.Hour, false},
		{"completed future", models.StatusCompleted, time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCancel(appt(tt.status, tt.offset), now); got != tt.want {
				t.Errorf("CanCancel(%s, %v) = %v, want %v", tt.status, tt.offset, got, tt.want)
			}
		})
	}
}

func TestPartitionCoversAllWithoutOverlap(t *testing.T) {
	appts := []models.Appointment{
		appt(models.StatusPending, time.Hour),
		appt(models.StatusConfirmed, 48 * time.Hour),
		appt(models.StatusPending, -time.Hour),
		appt(models.StatusCancelled, time.Hour),
		appt(models.StatusCompleted, -24 * time.Hour),
		appt(models.StatusConfirmed, 0),
	}

	upcoming, history := Partition(appts, now)

	if len(upcoming)+len(history) != len(appts) {
		t.Fatalf("partition dropped or duplicated items: %d + %d != %d",
			len(upcoming), len(history), len(appts))
	}

	seen := map[uuid.UUID]bool{}
	for _, a := range append(append([]models.Appointment{}, upcoming...), history...) {
		if seen[a.ID] {
			t.Fatalf("appointment %s appears in both partitions", a.ID)
		}
		seen[a.ID] = true
	}

	for _, a := range upcoming {
		if a.Status != models.StatusPending && a.Status != models.StatusConfirmed {
			t.Errorf("upcoming contains status %q", a.Status)
		}
		if a.ScheduledAt.Before(now) {
			t.Errorf("upcoming contains past appointment %s", a.ID)
		}
	}
}

func TestPartitionCancelledFutureGoesToHistory(t *testing.T) {
	cancelled := appt(models.StatusCancelled, 2*time.Hour)

	upcoming, history := Partition([]models.Appointment{cancelled}, now)

	if len(upcoming) != 0 {
		t.Errorf("cancelled appointment should not be upcoming")
	}
	if len(history) != 1 || history[0].ID != cancelled.ID {
		t.Errorf("cancelled appointment missing from history")
	}
}

func TestPartitionEmpty(t *testing.T) {
	upcoming, history := Partition(nil, now)
	if len(upcoming) != 0 || len(history) != 0 {
		t.Errorf("expected empty partitions, got %d upcoming, %d history", len(upcoming), len(history))
	}
}
