package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWizardTenantChangeResetsDownstreamSelections(t *testing.T) {
	w := NewBookingWizard(New("http://localhost"), "user-1")

	w.SelectTenant("t1")
	w.SelectService("s1")
	w.SelectStaff("m1")

	w.SelectTenant("t2")

	tenantID, serviceID, staffID := w.Selection()
	if tenantID != "t2" {
		t.Errorf("tenant = %q, want t2", tenantID)
	}
	if serviceID != "" || staffID != "" {
		t.Errorf("service/staff must reset on tenant change, got %q / %q", serviceID, staffID)
	}
}

func TestWizardReselectingSameTenantKeepsSelections(t *testing.T) {
	w := NewBookingWizard(New("http://localhost"), "user-1")

	w.SelectTenant("t1")
	w.SelectService("s1")
	w.SelectStaff("m1")
	w.SelectTenant("t1")

	_, serviceID, staffID := w.Selection()
	if serviceID != "s1" || staffID != "m1" {
		t.Errorf("same tenant reselect should keep selections, got %q / %q", serviceID, staffID)
	}
}

func TestWizardRejectsPastDate(t *testing.T) {
	w := NewBookingWizard(New("http://localhost"), "user-1")

	yesterday := time.Now().AddDate(0, 0, -1)
	if err := w.SetDate(yesterday); !errors.Is(err, ErrPastDate) {
		t.Errorf("SetDate(yesterday): got %v, want ErrPastDate", err)
	}
	if err := w.SetDate(time.Now()); err != nil {
		t.Errorf("SetDate(today): %v", err)
	}
	if err := w.SetDate(time.Now().AddDate(0, 0, 7)); err != nil {
		t.Errorf("SetDate(next week): %v", err)
	}
}

// Only the date is bounded to today. A past hour on today's date goes
// through; the server decides what to do with it.
func TestWizardAcceptsPastHourToday(t *testing.T) {
	w := NewBookingWizard(New("http://localhost"), "user-1")

	if err := w.SetDate(time.Now()); err != nil {
		t.Fatalf("SetDate(today): %v", err)
	}
	if err := w.SetTime(0, 0); err != nil {
		t.Fatalf("SetTime(0, 0): %v", err)
	}
	if _, ok := w.ScheduledAt(); !ok {
		t.Fatal("ScheduledAt should be resolvable")
	}
}

func TestWizardSubmitRequiresEverySelection(t *testing.T) {
	ctx := context.Background()

	w := NewBookingWizard(New("http://localhost"), "")
	if _, err := w.Submit(ctx); !errors.Is(err, ErrNoSessionUser) {
		t.Errorf("no user: got %v, want ErrNoSessionUser", err)
	}

	w = NewBookingWizard(New("http://localhost"), "user-1")
	w.SelectTenant("t1")
	w.SelectService("s1")
	if _, err := w.Submit(ctx); !errors.Is(err, ErrWizardIncomplete) {
		t.Errorf("missing staff/date/time: got %v, want ErrWizardIncomplete", err)
	}
}

func TestWizardSubmitCombinesDateAndTime(t *testing.T) {
	var received CreateAppointmentPayload
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/appointment" {
			json.NewDecoder(r.Body).Decode(&received)
			writeJSON(rw, http.StatusCreated, Appointment{
				ID: "a1", Status: StatusPending, ScheduledAt: received.ScheduledAt,
			})
			return
		}
		writeJSON(rw, http.StatusNotFound, map[string]interface{}{"error": true, "message": "Not found"})
	}))
	defer srv.Close()

	w := NewBookingWizard(New(srv.URL), "user-1")
	w.SelectTenant("t1")
	w.SelectService("s1")
	w.SelectStaff("m1")

	day := time.Now().AddDate(0, 0, 3)
	if err := w.SetDate(day); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if err := w.SetTime(14, 30); err != nil {
		t.Fatalf("SetTime: %v", err)
	}

	appt, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if appt.Status != StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}

	if received.UserID != "user-1" || received.TenantID != "t1" ||
		received.ServiceID != "s1" || received.StaffID != "m1" {
		t.Errorf("payload ids = %+v", received)
	}
	want := time.Date(day.Year(), day.Month(), day.Day(), 14, 30, 0, 0, day.Location())
	if !received.ScheduledAt.Equal(want) {
		t.Errorf("scheduledAt = %v, want %v", received.ScheduledAt, want)
	}
}
