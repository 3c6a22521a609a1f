package models

// User is the authenticated user record persisted under the "auth" key.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
