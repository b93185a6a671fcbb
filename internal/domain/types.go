package domain

// ID is used for numeric entity identifiers.
type ID int64

// Status represents a lightweight state value.
type Status string

// StatusConfirmed is the only state a booking in the ledger can be in.
const StatusConfirmed Status = "confirmed"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
