package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type DashboardStats struct {
	Plans        int64 `json:"plans"`
	Tenants      int64 `json:"tenants"`
	Staff        int64 `json:"staff"`
	Services     int64 `json:"services"`
	Appointments int64 `json:"appointments"`
}
