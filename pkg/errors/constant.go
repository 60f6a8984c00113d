package errors

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageInternal is the default message for 500.
	MessageInternal = "Internal server error"
)
