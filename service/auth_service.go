package service

import (
	"crypto/rsa"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"monumento-api/logger"
	"monumento-api/model"
	"monumento-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("this user already exists")
	ErrInvalidCredentials  = errors.New("incorrect password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

const bcryptCost = 10

// AuthService issues and verifies RS256-signed tokens and owns the refresh
// token state stored on the user record. The private key never leaves this
// service; verification elsewhere uses only the public key.
type AuthService struct {
	userRepo        repository.IUserRepository
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// LoginResult is what a successful login returns to the client.
type LoginResult struct {
	UserID       int    `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewAuthService(userRepo repository.IUserRepository, privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, accessTokenTTL, refreshTokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		privateKey:      privateKey,
		publicKey:       publicKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// PublicKey exposes the verification key for the middleware and the
// realtime channel; it cannot be used to sign.
func (s *AuthService) PublicKey() *rsa.PublicKey {
	return s.publicKey
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) signToken(username string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := &model.AppClaims{
		UserName: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(s.privateKey)
	if err != nil {
		logger.Log.WithError(err).WithField("username", username).Error("Failed to sign JWT")
		return "", time.Time{}, fmt.Errorf("failed to sign token string: %w", err)
	}

	// Expiry claims are second-granularity; keep the stored timestamp
	// consistent with what the token actually encodes.
	return tokenString, expiresAt.Truncate(time.Second), nil
}

// GenerateAccessToken mints a short-lived access token. No side effects.
func (s *AuthService) GenerateAccessToken(username string) (string, error) {
	tokenString, _, err := s.signToken(username, s.accessTokenTTL)
	return tokenString, err
}

// GenerateRefreshToken mints a long-lived refresh token and reports the
// expiry encoded in its claims. No side effects by itself.
func (s *AuthService) GenerateRefreshToken(username string) (string, time.Time, error) {
	return s.signToken(username, s.refreshTokenTTL)
}

// VerifyToken checks signature and expiry against the public key and
// returns the decoded claims.
func (s *AuthService) VerifyToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(username, password string) (*model.User, error) {
	_, err := s.userRepo.GetUserByUsername(username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	logger.Log.WithField("username", username).Info("New user registered")
	return user, nil
}

// Login verifies the credentials, issues an access/refresh token pair and
// persists the refresh token with its expiry on the user record. Any
// previously stored refresh token is overwritten.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := s.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, refreshToken, refreshExpiry); err != nil {
		return nil, err
	}

	logger.Log.WithField("username", username).Info("User logged in")
	return &LoginResult{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a stored refresh token for a fresh access token. The
// refresh token itself is not rotated; it stays valid until its own expiry.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(refreshToken)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	if user.RefreshTokenExpiry.Valid && user.RefreshTokenExpiry.Time.Before(time.Now()) {
		return "", ErrRefreshTokenExpired
	}

	return s.GenerateAccessToken(user.Username)
}
