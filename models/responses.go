package models

// PingResponse is returned by the liveness probe.
type PingResponse struct {
	Pong bool `json:"pong"`
}

// OKResponse acknowledges a successful write.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by the readiness probe.
type HealthResponse struct {
	Status string `json:"status"`
}
