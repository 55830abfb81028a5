package client

import (
	"testing"
	"time"
)

func TestCanCancelMatchesStatusAndTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		appt Appointment
		want bool
	}{
		{"pending future", Appointment{Status: StatusPending, ScheduledAt: now.Add(time.Hour)}, true},
		{"confirmed at now", Appointment{Status: StatusConfirmed, ScheduledAt: now}, true},
		{"confirmed past", Appointment{Status: StatusConfirmed, ScheduledAt: now.Add(-time.Minute)}, false},
		{"cancelled future", Appointment{Status: StatusCancelled, ScheduledAt: now.Add(time.Hour)}, false},
		{"completed past", Appointment{Status: StatusCompleted, ScheduledAt: now.Add(-time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCancel(tt.appt, now); got != tt.want {
				t.Errorf("CanCancel = %v, want %v", got, tt.want)
			}
		})
	}
}
