package model

import "time"

// AccountStatus enumerates user account gating states.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusBlocked  AccountStatus = "blocked"
)

// UserAccount is a registered user. Usernames are unique and case-sensitive.
// The password is stored verbatim — this mirrors the product's local account
// list, which has no real identity model.
type UserAccount struct {
	Username  string        `json:"username"`
	Password  string        `json:"-"`
	Status    AccountStatus `json:"status"`
	IsAdmin   bool          `json:"is_admin"`
	CreatedAt time.Time     `json:"created_at"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
