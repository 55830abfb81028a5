package dto

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	TenantID string `json:"tenantId"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
