package entities

import "time"

// Feedback captures quick product feedback from users.
type Feedback struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
