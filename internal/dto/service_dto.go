package dto

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	TenantID    string  `json:"tenantId"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
}
