package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the payload signed into both access and refresh tokens.
type AppClaims struct {
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}
