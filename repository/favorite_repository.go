package repository

import (
	"database/sql"

	"monumento-api/logger"
	"monumento-api/model"

	"github.com/sirupsen/logrus"
)

// IFavoriteRepository defines the contract for the user/monument favorites
// relation.
type IFavoriteRepository interface {
	CreateFavorite(favorite *model.Favorite) error
	GetFavoriteByUserAndMonument(userID, monumentID int) (*model.Favorite, error)
	GetFavoritesByUserID(userID int) ([]*model.Favorite, error)
	DeleteFavorite(userID, monumentID int) error
}

type FavoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) CreateFavorite(favorite *model.Favorite) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":     favorite.UserID,
		"monument_id": favorite.MonumentID,
	})
	log.Info("Executing query to create a new favorite")

	query := `INSERT INTO favorites (user_id, monument_id) VALUES ($1, $2) RETURNING id, created`
	err := r.DB.QueryRow(query, favorite.UserID, favorite.MonumentID).Scan(&favorite.ID, &favorite.Created)
	if err != nil {
		log.WithError(err).Error("Failed to execute create favorite query")
		return err
	}
	return nil
}

func (r *FavoriteRepository) GetFavoriteByUserAndMonument(userID, monumentID int) (*model.Favorite, error) {
	favorite := &model.Favorite{}
	query := `SELECT id, user_id, monument_id, created FROM favorites WHERE user_id = $1 AND monument_id = $2`
	err := r.DB.QueryRow(query, userID, monumentID).Scan(
		&favorite.ID, &favorite.UserID, &favorite.MonumentID, &favorite.Created,
	)
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

func (r *FavoriteRepository) GetFavoritesByUserID(userID int) ([]*model.Favorite, error) {
	query := `SELECT id, user_id, monument_id, created FROM favorites WHERE user_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for favorites by user ID")
		return nil, err
	}
	defer rows.Close()

	var favorites []*model.Favorite
	for rows.Next() {
		f := &model.Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.MonumentID, &f.Created); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *FavoriteRepository) DeleteFavorite(userID, monumentID int) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":     userID,
		"monument_id": monumentID,
	})
	log.Info("Executing query to delete favorite")

	_, err := r.DB.Exec(`DELETE FROM favorites WHERE user_id = $1 AND monument_id = $2`, userID, monumentID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete favorite query")
		return err
	}
	return nil
}
