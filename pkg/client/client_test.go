package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI is a minimal in-memory stand-in for the server, covering the
// routes the SDK tests exercise.
type fakeAPI struct {
	mu           sync.Mutex
	plans        []Plan
	appointments map[string]*Appointment
	listCalls    int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{appointments: map[string]*Appointment{}}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api")
	switch {
	case path == "/plan" && r.Method == http.MethodGet:
		f.listCalls++
		writeJSON(w, http.StatusOK, f.plans)
	case path == "/plan" && r.Method == http.MethodPost:
		var payload CreatePlanPayload
		json.NewDecoder(r.Body).Decode(&payload)
		plan := Plan{
			ID:          "plan-1",
			Name:        payload.Name,
			Description: payload.Description,
			Price:       payload.Price,
			Features:    payload.Features,
		}
		f.plans = append(f.plans, plan)
		writeJSON(w, http.StatusCreated, plan)
	case strings.HasPrefix(path, "/plan/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(path, "/plan/")
		for i, p := range f.plans {
			if p.ID == id {
				f.plans = append(f.plans[:i], f.plans[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Plan deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": true, "message": "Plan not found",
		})
	case path == "/appointment" && r.Method == http.MethodGet:
		appts := []Appointment{}
		for _, a := range f.appointments {
			appts = append(appts, *a)
		}
		writeJSON(w, http.StatusOK, appts)
	case strings.HasPrefix(path, "/appointment/") && r.Method == http.MethodPatch:
		id := strings.TrimPrefix(path, "/appointment/")
		appt, ok := f.appointments[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": true, "message": "Appointment not found",
			})
			return
		}
		var payload UpdateAppointmentPayload
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Status != nil {
			appt.Status = *payload.Status
		}
		writeJSON(w, http.StatusOK, appt)
	default:
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": true, "message": "Not found",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithToken("test-token")), api
}

func TestCreatePlanAppearsInList(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.CreatePlan(ctx, CreatePlanPayload{
		Name:        "Basic",
		Description: "x",
		Price:       29.90,
		Features:    map[string]interface{}{"maxUsers": 5},
	}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	plans, err := c.Plans(ctx)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if plans[0].Price != 29.90 {
		t.Errorf("price = %v, want 29.90", plans[0].Price)
	}
	// JSON numbers decode as float64.
	if got, ok := plans[0].Features["maxUsers"].(float64); !ok || got != 5 {
		t.Errorf("features.maxUsers = %v, want 5", plans[0].Features["maxUsers"])
	}
}

func TestListServedFromCacheUntilInvalidated(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Plans(ctx); err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if _, err := c.Plans(ctx); err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if api.listCalls != 1 {
		t.Fatalf("got %d list requests, want 1 (second read should hit the cache)", api.listCalls)
	}

	if _, err := c.CreatePlan(ctx, CreatePlanPayload{Name: "Pro", Price: 59}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if _, err := c.Plans(ctx); err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("got %d list requests, want 2 (create must invalidate the list)", api.listCalls)
	}
}

func TestDeletePlanIdempotenceSurfacesNotFound(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	plan, err := c.CreatePlan(ctx, CreatePlanPayload{Name: "Basic", Price: 10})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	if err := c.DeletePlan(ctx, plan.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	err = c.DeletePlan(ctx, plan.ID)
	if err == nil {
		t.Fatal("second delete should fail, not silently succeed")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
		t.Fatalf("second delete: got %v, want not-found APIError", err)
	}
}

func TestCancelMovesAppointmentToHistory(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()
	now := time.Now()

	api.appointments["a1"] = &Appointment{
		ID:          "a1",
		Status:      StatusConfirmed,
		ScheduledAt: now.Add(24 * time.Hour),
	}

	appts, err := c.Appointments(ctx, AppointmentFilter{})
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	upcoming, history := Partition(appts, now)
	if len(upcoming) != 1 || len(history) != 0 {
		t.Fatalf("before cancel: %d upcoming, %d history", len(upcoming), len(history))
	}

	cancelled, err := c.CancelAppointment(ctx, "a1")
	if err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Fatalf("status after cancel = %q", cancelled.Status)
	}

	appts, err = c.Appointments(ctx, AppointmentFilter{})
	if err != nil {
		t.Fatalf("Appointments after cancel: %v", err)
	}
	upcoming, history = Partition(appts, now)
	if len(upcoming) != 0 || len(history) != 1 {
		t.Fatalf("after cancel: %d upcoming, %d history", len(upcoming), len(history))
	}
}

func TestGetRequiresID(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Plan(ctx, ""); !errors.Is(err, ErrMissingID) {
		t.Errorf("Plan(\"\"): got %v, want ErrMissingID", err)
	}
	if _, err := c.Appointment(ctx, ""); !errors.Is(err, ErrMissingID) {
		t.Errorf("Appointment(\"\"): got %v, want ErrMissingID", err)
	}
	if err := c.DeleteStaff(ctx, ""); !errors.Is(err, ErrMissingID) {
		t.Errorf("DeleteStaff(\"\"): got %v, want ErrMissingID", err)
	}
}
