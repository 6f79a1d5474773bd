package models

const (
	RoleClient = "client"
	RoleExpert = "expert"
	RoleAdmin  = "admin"
)

// Principal is the authenticated caller handed to every pipeline entry
// point. Identity and session management live in a separate service; the
// pipeline only ever sees this resolved value.
type Principal struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
}

func (p *Principal) IsClient() bool {
	return p.Role == RoleClient
}

func (p *Principal) IsExpert() bool {
	return p.Role == RoleExpert
}

func (p *Principal) IsNotClient() bool {
	return !p.IsClient()
}
