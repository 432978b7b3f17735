package model

// Patient carries identity fields only. Created at signup, read at login and
// on the profile pages, never deleted.
type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
