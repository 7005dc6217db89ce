package repository

import (
	"database/sql"
	"testing"
	"time"

	"monumento-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func monumentColumnsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "country", "city", "build_year", "picture", "description", "created"})
}

func TestMonumentRepository_CreateMonument(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)
	buildYear := 1889

	mock.ExpectQuery(`INSERT INTO monuments`).
		WithArgs("Eiffel Tower", "France", "Paris", &buildYear, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created"}).AddRow(42, time.Now()))

	monument := &model.Monument{
		Title:     "Eiffel Tower",
		Country:   "France",
		City:      "Paris",
		BuildYear: &buildYear,
	}
	err = repo.CreateMonument(monument)

	assert.NoError(t, err)
	assert.Equal(t, 42, monument.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_GetAllMonuments(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM monuments ORDER BY id`).
		WillReturnRows(monumentColumnsRows().
			AddRow(1, "Eiffel Tower", "France", "Paris", 1889, nil, nil, now).
			AddRow(2, "Colosseum", "Italy", "Rome", 80, "colosseum.jpg", "An amphitheatre", now))

	monuments, err := repo.GetAllMonuments()

	assert.NoError(t, err)
	assert.Len(t, monuments, 2)
	assert.Equal(t, "Eiffel Tower", monuments[0].Title)
	assert.Nil(t, monuments[0].Picture)
	assert.Equal(t, "colosseum.jpg", *monuments[1].Picture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_GetMonumentByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM monuments WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(monumentColumnsRows().
				AddRow(1, "Eiffel Tower", "France", "Paris", 1889, nil, nil, time.Now()))

		monument, err := repo.GetMonumentByID(1)

		assert.NoError(t, err)
		assert.Equal(t, 1, monument.ID)
		assert.Equal(t, 1889, *monument.BuildYear)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM monuments WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetMonumentByID(99)

		assert.Equal(t, sql.ErrNoRows, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_GetMonumentsByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)

	t.Run("empty input skips the query", func(t *testing.T) {
		monuments, err := repo.GetMonumentsByIDs(nil)

		assert.NoError(t, err)
		assert.Nil(t, monuments)
	})

	t.Run("fetches by id set", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = ANY\(\$1\)`).
			WithArgs(pq.Array([]int{1, 2})).
			WillReturnRows(monumentColumnsRows().
				AddRow(1, "Eiffel Tower", "France", "Paris", 1889, nil, nil, time.Now()).
				AddRow(2, "Colosseum", "Italy", "Rome", 80, nil, nil, time.Now()))

		monuments, err := repo.GetMonumentsByIDs([]int{1, 2})

		assert.NoError(t, err)
		assert.Len(t, monuments, 2)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_SearchMonuments(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)

	mock.ExpectQuery(`title ILIKE`).
		WithArgs("tower", "", "paris").
		WillReturnRows(monumentColumnsRows().
			AddRow(1, "Eiffel Tower", "France", "Paris", 1889, nil, nil, time.Now()))

	monuments, err := repo.SearchMonuments("tower", "", "paris")

	assert.NoError(t, err)
	assert.Len(t, monuments, 1)
	assert.Equal(t, "Eiffel Tower", monuments[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_UpdateMonument(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)
	newTitle := "Tour Eiffel"

	t.Run("applies only non-nil fields", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE monuments SET`).
			WithArgs(1, &newTitle, nil, nil, nil, nil, nil).
			WillReturnRows(monumentColumnsRows().
				AddRow(1, "Tour Eiffel", "France", "Paris", 1889, nil, nil, time.Now()))

		monument, err := repo.UpdateMonument(1, model.MonumentUpdate{Title: &newTitle})

		assert.NoError(t, err)
		assert.Equal(t, "Tour Eiffel", monument.Title)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE monuments SET`).
			WithArgs(99, nil, nil, nil, nil, nil, nil).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateMonument(99, model.MonumentUpdate{})

		assert.Equal(t, sql.ErrNoRows, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepository_DeleteMonument(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMonumentRepository(db)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM monuments WHERE id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeleteMonument(1)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM monuments WHERE id = \$1`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeleteMonument(99)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
