package brainsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	// Error is a machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Auth Types
// ============================================================================

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse" minLength:"8"`
	FullName string `json:"full_name" example:"Ada Lovelace" minLength:"1"`

	// LanguagePreference defaults to "en" when empty
	LanguagePreference string `json:"language_preference,omitempty" example:"en"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

// PasswordChangeRequest is the body of POST /auth/password.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" minLength:"8"`
}

// User is the public view of an account.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	// AccessToken is the signed JWT to send as "Authorization: Bearer {token}"
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type" example:"bearer"`

	User User `json:"user"`
}

// ============================================================================
// Translation Types
// ============================================================================

// CreateTranslationRequest is the body of POST /translations.
type CreateTranslationRequest struct {
	SourceText      *string `json:"source_text,omitempty"`
	SourceLanguage  string  `json:"source_language,omitempty" example:"en"`
	TargetLanguage  string  `json:"target_language,omitempty" example:"hi"`
	TranslatedText  *string `json:"translated_text,omitempty"`
	TranslationType string  `json:"translation_type" example:"text"`
	AudioFileURL    *string `json:"audio_file_url,omitempty"`
	ImageFileURL    *string `json:"image_file_url,omitempty"`
}

// UpdateTranslationRequest is the body of PATCH /translations/{id}. Omitted
// fields are left unchanged.
type UpdateTranslationRequest struct {
	TranslatedText *string `json:"translated_text,omitempty"`
	BrailleOutput  *string `json:"braille_output,omitempty"`
	TargetLanguage *string `json:"target_language,omitempty"`
}

// Translation is the stored record of one conversion request.
type Translation struct {
	ID              string    `json:"id"`
	SourceText      *string   `json:"source_text"`
	SourceLanguage  string    `json:"source_language"`
	TargetLanguage  string    `json:"target_language"`
	TranslatedText  *string   `json:"translated_text"`
	BrailleOutput   *string   `json:"braille_output"`
	AudioFileURL    *string   `json:"audio_file_url"`
	ImageFileURL    *string   `json:"image_file_url"`
	TranslationType string    `json:"translation_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StatsResponse is returned by GET /translations/stats.
type StatsResponse struct {
	Total int64 `json:"total"`

	// ByMethod always carries text, image, audio, microphone, file and
	// braille, plus any other type seen in the history
	ByMethod map[string]int64 `json:"byMethod"`
}

// ListOptions narrows GET /translations.
type ListOptions struct {
	// Limit caps the number of results; zero lets the server default apply
	Limit int

	// Unlimited asks for the whole history and overrides Limit
	Unlimited bool

	// Search is a case-insensitive substring of source text or braille output
	Search string
}

// ============================================================================
// System Types
// ============================================================================

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Version string `json:"version"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	// Status is "healthy" for /health, "ok" or "degraded" for the probes
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks is only present on /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
