package service

// Wish submission outcomes
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// WishMetrics records wish submission outcomes.
type WishMetrics interface {
	ObserveSubmission(outcome string)
}
