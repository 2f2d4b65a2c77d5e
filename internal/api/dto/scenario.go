package dto

type ListScenariosResponse struct {
	Scenarios []string `json:"scenarios"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}
