package requests

// QueryParams scopes booking list reads to the caller.
type QueryParams struct {
	ClientID string
	ExpertID string
	Status   string
	Page     int
	PageSize int
}
