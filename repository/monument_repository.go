package repository

import (
	"database/sql"

	"monumento-api/logger"
	"monumento-api/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// IMonumentRepository defines the contract for monument storage.
type IMonumentRepository interface {
	CreateMonument(monument *model.Monument) error
	GetAllMonuments() ([]*model.Monument, error)
	GetMonumentByID(id int) (*model.Monument, error)
	GetMonumentsByIDs(ids []int) ([]*model.Monument, error)
	SearchMonuments(title, country, city string) ([]*model.Monument, error)
	UpdateMonument(id int, update model.MonumentUpdate) (*model.Monument, error)
	DeleteMonument(id int) (bool, error)
}

type MonumentRepository struct {
	DB *sql.DB
}

func NewMonumentRepository(db *sql.DB) *MonumentRepository {
	return &MonumentRepository{DB: db}
}

const monumentColumns = `id, title, country, city, build_year, picture, description, created`

func scanMonument(row *sql.Row) (*model.Monument, error) {
	m := &model.Monument{}
	err := row.Scan(&m.ID, &m.Title, &m.Country, &m.City, &m.BuildYear, &m.Picture, &m.Description, &m.Created)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanMonumentRows(rows *sql.Rows) ([]*model.Monument, error) {
	defer rows.Close()

	var monuments []*model.Monument
	for rows.Next() {
		m := &model.Monument{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Country, &m.City, &m.BuildYear, &m.Picture, &m.Description, &m.Created); err != nil {
			return nil, err
		}
		monuments = append(monuments, m)
	}
	return monuments, rows.Err()
}

func (r *MonumentRepository) CreateMonument(monument *model.Monument) error {
	log := logger.Log.WithFields(logrus.Fields{
		"title":   monument.Title,
		"country": monument.Country,
		"city":    monument.City,
	})
	log.Info("Executing query to create a new monument")

	query := `INSERT INTO monuments (title, country, city, build_year, picture, description)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created`
	err := r.DB.QueryRow(query,
		monument.Title, monument.Country, monument.City,
		monument.BuildYear, monument.Picture, monument.Description,
	).Scan(&monument.ID, &monument.Created)
	if err != nil {
		log.WithError(err).Error("Failed to execute create monument query")
		return err
	}
	return nil
}

func (r *MonumentRepository) GetAllMonuments() ([]*model.Monument, error) {
	query := `SELECT ` + monumentColumns + ` FROM monuments ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all monuments")
		return nil, err
	}
	return scanMonumentRows(rows)
}

func (r *MonumentRepository) GetMonumentByID(id int) (*model.Monument, error) {
	query := `SELECT ` + monumentColumns + ` FROM monuments WHERE id = $1`
	return scanMonument(r.DB.QueryRow(query, id))
}

func (r *MonumentRepository) GetMonumentsByIDs(ids []int) ([]*model.Monument, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + monumentColumns + ` FROM monuments WHERE id = ANY($1) ORDER BY id`
	rows, err := r.DB.Query(query, pq.Array(ids))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for monuments by ids")
		return nil, err
	}
	return scanMonumentRows(rows)
}

// SearchMonuments filters by case-insensitive substring on any combination
// of title, country and city. Empty criteria match everything.
func (r *MonumentRepository) SearchMonuments(title, country, city string) ([]*model.Monument, error) {
	query := `SELECT ` + monumentColumns + ` FROM monuments
	          WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
	            AND ($2 = '' OR country ILIKE '%' || $2 || '%')
	            AND ($3 = '' OR city ILIKE '%' || $3 || '%')
	          ORDER BY id`
	rows, err := r.DB.Query(query, title, country, city)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute search monuments query")
		return nil, err
	}
	return scanMonumentRows(rows)
}

// UpdateMonument applies the non-nil fields of update and returns the new
// row. Returns sql.ErrNoRows when the monument does not exist.
func (r *MonumentRepository) UpdateMonument(id int, update model.MonumentUpdate) (*model.Monument, error) {
	log := logger.Log.WithField("monument_id", id)
	log.Info("Executing query to update monument")

	query := `UPDATE monuments SET
	            title = COALESCE($2, title),
	            country = COALESCE($3, country),
	            city = COALESCE($4, city),
	            build_year = COALESCE($5, build_year),
	            picture = COALESCE($6, picture),
	            description = COALESCE($7, description)
	          WHERE id = $1
	          RETURNING ` + monumentColumns
	monument, err := scanMonument(r.DB.QueryRow(query, id,
		update.Title, update.Country, update.City,
		update.BuildYear, update.Picture, update.Description,
	))
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update monument query")
		}
		return nil, err
	}
	return monument, nil
}

func (r *MonumentRepository) DeleteMonument(id int) (bool, error) {
	log := logger.Log.WithField("monument_id", id)
	log.Info("Executing query to delete monument")

	result, err := r.DB.Exec(`DELETE FROM monuments WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete monument query")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
