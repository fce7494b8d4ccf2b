package dto

// ErrorResponse carries a human-readable failure description.
type ErrorResponse struct {
	Error string `json:"error"`
}
