package repository

import (
	"database/sql"
	"time"

	"monumento-api/logger"
	"monumento-api/model"
)

// IUserRepository defines the contract for user credential storage.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(id int) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByRefreshToken(refreshToken string) (*model.User, error)
	UpdateRefreshToken(userID int, refreshToken string, expiry time.Time) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created, updated`
	return r.DB.QueryRow(query, user.Username, user.Password).Scan(&user.ID, &user.Created, &user.Updated)
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, refresh_token, refresh_token_expiry, created, updated FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.Password,
		&user.RefreshToken, &user.RefreshTokenExpiry, &user.Created, &user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, refresh_token, refresh_token_expiry, created, updated FROM users WHERE username = $1`
	err := r.DB.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password,
		&user.RefreshToken, &user.RefreshTokenExpiry, &user.Created, &user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByRefreshToken looks a user up by exact refresh token match.
// Returns sql.ErrNoRows when no user holds the token.
func (r *UserRepository) GetUserByRefreshToken(refreshToken string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, refresh_token, refresh_token_expiry, created, updated FROM users WHERE refresh_token = $1`
	err := r.DB.QueryRow(query, refreshToken).Scan(
		&user.ID, &user.Username, &user.Password,
		&user.RefreshToken, &user.RefreshTokenExpiry, &user.Created, &user.Updated,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get user by refresh token query")
		}
		return nil, err
	}
	return user, nil
}

// UpdateRefreshToken overwrites the user's stored refresh token and its
// expiry. The previous token, if any, stops being recognized.
func (r *UserRepository) UpdateRefreshToken(userID int, refreshToken string, expiry time.Time) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to update refresh token")

	query := `UPDATE users SET refresh_token = $1, refresh_token_expiry = $2, updated = now() WHERE id = $3`
	_, err := r.DB.Exec(query, refreshToken, expiry, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update refresh token query")
		return err
	}
	return nil
}
