package model

import (
	"database/sql"
	"time"
)

// User carries the credential state for one account. At most one refresh
// token is live per user; login overwrites both token and expiry.
type User struct {
	ID                 int            `json:"id"`
	Username           string         `json:"username"`
	Password           string         `json:"-"`
	RefreshToken       sql.NullString `json:"-"`
	RefreshTokenExpiry sql.NullTime   `json:"-"`
	Created            time.Time      `json:"created"`
	Updated            time.Time      `json:"updated"`
}
