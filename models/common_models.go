package models

// Health status constants
const (
	StatusHealthy = "healthy"
)

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints []string       `json:"endpoints"`
	Discord   *DiscordStatus `json:"discord,omitempty"`
}
