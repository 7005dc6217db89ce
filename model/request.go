// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=25"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for exchanging a refresh token
// for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// MonumentPayload is the monument body used by create and update requests.
// The wire format nests it under a "monument" key.
type MonumentPayload struct {
	Title       string  `json:"title" validate:"required,min=3,max=70"`
	Country     string  `json:"country" validate:"required,min=2,max=100"`
	City        string  `json:"city" validate:"required,min=2,max=100"`
	BuildYear   *int    `json:"buildYear,omitempty" validate:"omitempty,gte=-3000"`
	Picture     *string `json:"picture,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// CreateMonumentRequest wraps the payload the way the public API expects it.
type CreateMonumentRequest struct {
	Monument MonumentPayload `json:"monument" validate:"required"`
}

// UpdateMonumentRequest carries a partial monument; absent fields are left
// untouched.
type UpdateMonumentRequest struct {
	Monument MonumentUpdate `json:"monument" validate:"required"`
}

type MonumentUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=70"`
	Country     *string `json:"country,omitempty" validate:"omitempty,min=2,max=100"`
	City        *string `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	BuildYear   *int    `json:"buildYear,omitempty" validate:"omitempty,gte=-3000"`
	Picture     *string `json:"picture,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}
