package domain

// LocalConfig is the per-user state persisted between invocations.
//
// Both fields are optional; a zero LocalConfig is what a fresh installation
// reads before anything has been imported.
type LocalConfig struct {
	// Subscription is the id of the current subscription.
	Subscription string `json:"subscription,omitempty"`
	// Endpoint is the normalized service management endpoint.
	Endpoint string `json:"endpoint,omitempty"`
}
