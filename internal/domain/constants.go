package domain

// Payment status values as reported by the provider. Raw provider values
// outside this set pass through untouched.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
	StatusUnknown   = "unknown"
)

// DefaultPayerEmail is used when a creation request omits payer_email.
const DefaultPayerEmail = "test_user@test.com"
