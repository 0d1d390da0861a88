package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}
