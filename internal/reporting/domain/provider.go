package domain

// Provider returns the pre-defined snapshot for a time range.
// Implementations must be safe for concurrent use and return copies,
// never references into shared state.
type Provider interface {
	IdentitySnapshot(r TimeRange) (IdentitySnapshot, error)
	HygieneSnapshot(r TimeRange) (HygieneSnapshot, error)
}
