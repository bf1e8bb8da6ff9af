package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// APIInfoResponse is returned from the root route
type APIInfoResponse struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Description    string `json:"description"`
	Docs           string `json:"docs"`
	Health         string `json:"health"`
	Authentication string `json:"authentication"`
}
