package client

import "time"

// Wire types mirror the server's JSON shapes. They are owned by the
// SDK so importing applications never depend on server internals.

type Plan struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Features    map[string]interface{} `json:"features"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PlanID    string    `json:"planId"`
	Plan      *Plan     `json:"plan,omitempty"`
	Owners    []Owner   `json:"owners,omitempty"`
	Services  []Service `json:"services,omitempty"`
	Staff     []Staff   `json:"staff,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TenantID  string    `json:"tenantId"`
	Tenant    *Tenant   `json:"tenant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	TenantID    string    `json:"tenantId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Appointment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	StaffID     string    `json:"staffId"`
	TenantID    string    `json:"tenantId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	Service     *Service  `json:"service,omitempty"`
	Staff       *Staff    `json:"staff,omitempty"`
	Tenant      *Tenant   `json:"tenant,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Mutation payloads. Pointer fields on updates mean "leave unchanged".

type CreatePlanPayload struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Features    map[string]interface{} `json:"features,omitempty"`
}

type UpdatePlanPayload struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	Features    map[string]interface{} `json:"features,omitempty"`
}

type CreateTenantPayload struct {
	Name       string `json:"name"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerName  string `json:"ownerName"`
	PlanID     string `json:"planId"`
}

type UpdateTenantPayload struct {
	Name   *string `json:"name,omitempty"`
	PlanID *string `json:"planId,omitempty"`
}

type CreateStaffPayload struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	TenantID string `json:"tenantId"`
}

type UpdateStaffPayload struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateServicePayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	TenantID    string  `json:"tenantId"`
}

type UpdateServicePayload struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type CreateAppointmentPayload struct {
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	StaffID     string    `json:"staffId"`
	TenantID    string    `json:"tenantId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type UpdateAppointmentPayload struct {
	ServiceID   *string    `json:"serviceId,omitempty"`
	StaffID     *string    `json:"staffId,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Status      *string    `json:"status,omitempty"`
}
