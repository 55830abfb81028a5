package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Invalid payloads must be rejected before any request is issued: the
// server sees zero calls.
func TestMutationsRejectInvalidPayloadsBeforeNetwork(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		writeJSON(w, http.StatusOK, map[string]string{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	zero := 0
	negative := -5.0
	badEmail := "not-an-email"

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"create service zero duration", func() error {
			_, err := c.CreateService(ctx, CreateServicePayload{Name: "Cut", Duration: 0, Price: 10, TenantID: "t1"})
			return err
		}, ErrInvalidDuration},
		{"create service negative price", func() error {
			_, err := c.CreateService(ctx, CreateServicePayload{Name: "Cut", Duration: 30, Price: -5, TenantID: "t1"})
			return err
		}, ErrInvalidPrice},
		{"update service zero duration", func() error {
			_, err := c.UpdateService(ctx, "s1", UpdateServicePayload{Duration: &zero})
			return err
		}, ErrInvalidDuration},
		{"update service negative price", func() error {
			_, err := c.UpdateService(ctx, "s1", UpdateServicePayload{Price: &negative})
			return err
		}, ErrInvalidPrice},
		{"create staff malformed email", func() error {
			_, err := c.CreateStaff(ctx, CreateStaffPayload{Name: "Ana", Email: badEmail, TenantID: "t1"})
			return err
		}, ErrInvalidEmail},
		{"update staff malformed email", func() error {
			_, err := c.UpdateStaff(ctx, "m1", UpdateStaffPayload{Email: &badEmail})
			return err
		}, ErrInvalidEmail},
		{"create plan negative price", func() error {
			_, err := c.CreatePlan(ctx, CreatePlanPayload{Name: "Basic", Price: -1})
			return err
		}, ErrInvalidPrice},
		{"update plan negative price", func() error {
			_, err := c.UpdatePlan(ctx, "p1", UpdatePlanPayload{Price: &negative})
			return err
		}, ErrInvalidPrice},
		{"create tenant malformed owner email", func() error {
			_, err := c.CreateTenant(ctx, CreateTenantPayload{Name: "Salon", OwnerEmail: badEmail, PlanID: "p1"})
			return err
		}, ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	if n := atomic.LoadInt64(&requests); n != 0 {
		t.Fatalf("server saw %d requests, want 0", n)
	}
}

func TestValidPayloadStillReachesServer(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		writeJSON(w, http.StatusCreated, Service{ID: "s1", Name: "Cut", Duration: 30, Price: 25})
	}))
	defer srv.Close()

	c := New(srv.URL)
	svc, err := c.CreateService(context.Background(), CreateServicePayload{
		Name: "Cut", Duration: 30, Price: 25, TenantID: "t1",
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if svc.ID != "s1" {
		t.Errorf("id = %q", svc.ID)
	}
	if n := atomic.LoadInt64(&requests); n != 1 {
		t.Fatalf("server saw %d requests, want 1", n)
	}
}
