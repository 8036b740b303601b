package models

// InstanceStatus is the observed health of a user's sync-engine instance.
type InstanceStatus struct {
	Username string `json:"username"`
	Index    int    `json:"index"`
	WebPort  int    `json:"webPort"`

	// Healthy reports whether the health endpoint answered with status OK.
	Healthy bool `json:"healthy"`

	// Status is the reported status, or the failure reason when unhealthy.
	Status string `json:"status"`
}

// HealthResponse is the body of the sync-engine's unauthenticated health
// endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
