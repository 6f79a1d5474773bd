package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

const (
	// DefaultBookingHoldMinutes is how long a pending booking reserves its slot.
	DefaultBookingHoldMinutes = 20
)
