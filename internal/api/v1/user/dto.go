package user

// CreateUserRequest carries the external identifiers of the new user as a
// flat list alternating key, value.
type CreateUserRequest struct {
	Identifiers []string `json:"identifiers"`
}
