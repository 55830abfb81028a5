package dto

type CreatePlanRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Features    map[string]interface{} `json:"features"`
}

type UpdatePlanRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Price       *float64               `json:"price"`
	Features    map[string]interface{} `json:"features"`
}
