package dto

type CreateTenantRequest struct {
	Name       string `json:"name"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerName  string `json:"ownerName"`
	PlanID     string `json:"planId"`
}

type UpdateTenantRequest struct {
	Name   *string `json:"name"`
	PlanID *string `json:"planId"`
}
