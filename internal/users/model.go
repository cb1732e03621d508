package users

import "time"

// User is an HR account that owns recruitment forms.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Company      string    `json:"company,omitempty"`
	Position     string    `json:"position,omitempty"`
	Department   string    `json:"department,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
