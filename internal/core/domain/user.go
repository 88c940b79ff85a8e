package domain

import "time"

// User is a back-office operator account.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// GoogleID links the account to a Google identity when the operator
	// signs in through OAuth instead of a password.
	GoogleID               *string    `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	IsActive               bool       `json:"isActive"`
	AuditFields
}

// GoogleUserInfo is the subset of the Google userinfo payload the back office
// consumes during OAuth sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
