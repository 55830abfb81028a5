package dto

import "time"

type CreateAppointmentRequest struct {
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	StaffID     string    `json:"staffId"`
	TenantID    string    `json:"tenantId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// UpdateAppointmentRequest is a partial patch; cancellation arrives as
// {"status":"cancelled"} with every other field absent.
type UpdateAppointmentRequest struct {
	ServiceID   *string    `json:"serviceId"`
	StaffID     *string    `json:"staffId"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Status      *string    `json:"status"`
}
