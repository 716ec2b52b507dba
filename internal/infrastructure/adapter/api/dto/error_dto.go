package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the body of successful actions that return no resource
type MessageResponse struct {
	Message string `json:"message"`
}
