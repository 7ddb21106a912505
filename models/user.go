package models

import "time"

// SessionUser is the JSON blob stored in the session cookie for a logged-in
// shopper.
type SessionUser struct {
	Token     string    `json:"token"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// Customer mirrors the backend customer record.
type Customer struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username,omitempty"`
}
