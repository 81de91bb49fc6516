package domain

import "time"

// DefaultLanguagePreference is applied when signup omits a preference.
const DefaultLanguagePreference = "en"

type User struct {
	ID                 string
	Email              string
	PasswordHash       string // argon2id PHC string
	FullName           string
	LanguagePreference string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
