package client

import "time"

// CanCancel reports whether the booking user may still cancel: only
// pending or confirmed appointments whose scheduled time has not
// passed.
func CanCancel(a Appointment, now time.Time) bool {
	if a.Status != StatusPending && a.Status != StatusConfirmed {
		return false
	}
	return !a.ScheduledAt.Before(now)
}

// Partition splits appointments into upcoming and history. Upcoming
// means pending or confirmed with a scheduled time at or after now;
// everything else (completed, cancelled, or past-due) is history.
// Every appointment lands in exactly one of the two slices.
func Partition(appts []Appointment, now time.Time) (upcoming, history []Appointment) {
	for _, a := range appts {
		if (a.Status == StatusPending || a.Status == StatusConfirmed) && !a.ScheduledAt.Before(now) {
			upcoming = append(upcoming, a)
		} else {
			history = append(history, a)
		}
	}
	return upcoming, history
}
