// Package booking holds the appointment lifecycle rules the API
// server enforces.
package booking

import (
	"time"

	"agendly-backend/internal/models"
)

// CanCancel reports whether an appointment may still be cancelled:
// status pending or confirmed, and the scheduled time has not passed.
func CanCancel(a models.Appointment, now time.Time) bool {
	if a.Status != models.StatusPending && a.Status != models.StatusConfirmed {
		return false
	}
	return !a.ScheduledAt.Before(now)
}

// Partition splits appointments into upcoming and history. Upcoming is
// pending/confirmed with a scheduled time at or after now; everything
// else (completed, cancelled, or already past) is history. The two
// halves always cover the full input with no overlap.
func Partition(appointments []models.Appointment, now time.Time) (upcoming, history []models.Appointment) {
	for _, a := range appointments {
		if (a.Status == models.StatusPending || a.Status == models.StatusConfirmed) &&
			!a.ScheduledAt.Before(now) {
			upcoming = append(upcoming, a)
		} else {
			history = append(history, a)
		}
	}
	return upcoming, history
}
