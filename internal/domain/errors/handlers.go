package errors

// ErrorResponse is the body of every failed wishes API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is the body of a 409 answer; Wish is null when the prior wish could not be fetched
type ConflictResponse struct {
	Error string `json:"error"`
	State string `json:"state,omitempty"`
	Wish  any    `json:"wish"`
}
