package types

// User is the identity carried by a session token. Users are not part
// of the domain store; other entities reference them by ID only.
type User struct {
	ID     string  `json:"id"               validate:"required"`
	Email  string  `json:"email"            validate:"required,email"`
	Name   string  `json:"name"             validate:"required"`
	Role   Role    `json:"role"             validate:"required"`
	Avatar *string `json:"avatar,omitempty"`
}
