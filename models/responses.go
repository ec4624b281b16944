package models

// Response is the envelope wrapping every JSON body the API returns,
// successes and failures alike.
type Response struct {
	// Success reports whether the request was handled without error.
	Success bool `json:"success"`

	// Data carries the operation result on success.
	Data any `json:"data,omitempty"`

	// Error is a short client-facing description of a failure.
	Error string `json:"error,omitempty"`

	// Details holds field-keyed validation messages when Error is a
	// validation failure.
	Details FieldErrors `json:"details,omitempty"`

	// Message is an optional informational note accompanying Data.
	Message string `json:"message,omitempty"`
}

// AuthResponse is the payload returned by the register and login endpoints:
// a freshly signed bearer token plus the public view of the account.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// APIInfo is the payload of the root endpoint.
type APIInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
