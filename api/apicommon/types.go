package apicommon

import "time"

// TokenRequest represents a request for an API authentication token.
// swagger:model TokenRequest
type TokenRequest struct {
	// Identifier of the API client requesting the token
	ClientID string `json:"clientId" validate:"required,max=64"`

	// Shared secret of the API client
	Secret string `json:"secret" validate:"required"`
}

// LoginResponse represents the response to a successful token request.
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT authentication token
	Token string `json:"token"`

	// Token expiration time
	Expirity time.Time `json:"expirity"`
}

// CheckRequest represents a request to check a Swedish personal number.
// swagger:model CheckRequest
type CheckRequest struct {
	// Personal number in any of the accepted layouts
	Number string `json:"number"`
}

// CheckResponse represents the result of checking a Swedish personal number.
// swagger:model CheckResponse
type CheckResponse struct {
	// Whether the personal number is valid
	Valid bool `json:"valid"`
}

// ValidateRequest represents a request to validate a Swedish personal number.
// swagger:model ValidateRequest
type ValidateRequest struct {
	// Personal number in any of the accepted layouts
	Number string `json:"number"`
}

// ValidateResponse represents a successfully validated Swedish personal number.
// swagger:model ValidateResponse
type ValidateResponse struct {
	// The validated personal number, unchanged
	Number string `json:"number"`
}

// NormalizeRequest represents a request to normalize a Swedish personal number.
// swagger:model NormalizeRequest
type NormalizeRequest struct {
	// Personal number in any of the accepted layouts
	Number string `json:"number"`

	// Reference date used to resolve the century, defaults to today
	ReferenceDate string `json:"referenceDate,omitempty"`
}

// NormalizeResponse represents a normalized Swedish personal number.
// swagger:model NormalizeResponse
type NormalizeResponse struct {
	// The 12-digit canonical form of the personal number
	Normalized string `json:"normalized"`

	// The reference date the century was resolved against
	ReferenceDate string `json:"referenceDate"`
}
