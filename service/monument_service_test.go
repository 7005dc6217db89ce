package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"monumento-api/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMonumentRepo struct{ mock.Mock }

func (m *mockMonumentRepo) CreateMonument(monument *model.Monument) error {
	args := m.Called(monument)
	return args.Error(0)
}
func (m *mockMonumentRepo) GetAllMonuments() ([]*model.Monument, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Monument), args.Error(1)
}
func (m *mockMonumentRepo) GetMonumentByID(id int) (*model.Monument, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monument), args.Error(1)
}
func (m *mockMonumentRepo) GetMonumentsByIDs(ids []int) ([]*model.Monument, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Monument), args.Error(1)
}
func (m *mockMonumentRepo) SearchMonuments(title, country, city string) ([]*model.Monument, error) {
	args := m.Called(title, country, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Monument), args.Error(1)
}
func (m *mockMonumentRepo) UpdateMonument(id int, update model.MonumentUpdate) (*model.Monument, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monument), args.Error(1)
}
func (m *mockMonumentRepo) DeleteMonument(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type mockCacheClient struct{ mock.Mock }

func (m *mockCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}
func (m *mockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}
func (m *mockCacheClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	args := m.Called(callArgs...)
	return args.Get(0).(*redis.IntCmd)
}
func (m *mockCacheClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.IntCmd)
}
func (m *mockCacheClient) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, expiration)
	return args.Get(0).(*redis.BoolCmd)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyNewMonument(monument *model.Monument) {
	m.Called(monument)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestValidateMonumentRules(t *testing.T) {
	currentYear := time.Now().Year()

	testCases := []struct {
		name      string
		title     string
		country   string
		city      string
		buildYear *int
		expected  error
	}{
		{"valid monument", "Eiffel Tower", "France", "Paris", intPtr(1889), nil},
		{"forbidden word in title", "A test monument", "France", "Paris", nil, ErrTitleForbiddenWord},
		{"forbidden word case insensitive", "FAKE tower", "France", "Paris", nil, ErrTitleForbiddenWord},
		{"forbidden word embedded", "Protester statue", "France", "Paris", nil, ErrTitleForbiddenWord},
		{"city equals country", "Colosseum", "Monaco", "Monaco", nil, ErrCityEqualsCountry},
		{"city equals country case insensitive", "Colosseum", "Monaco", "MONACO", nil, ErrCityEqualsCountry},
		{"build year in the future", "Arch", "France", "Paris", intPtr(currentYear + 1), ErrBuildYearInFuture},
		{"build year current year", "Arch", "France", "Paris", intPtr(currentYear), nil},
		{"ancient build year", "Pyramid", "Egypt", "Giza", intPtr(-2500), nil},
		{"nil build year", "Arch", "France", "Paris", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMonumentRules(tc.title, tc.country, tc.city, tc.buildYear)
			assert.Equal(t, tc.expected, err)
		})
	}
}

func TestMonumentService_CreateMonument(t *testing.T) {
	payload := model.MonumentPayload{
		Title:     "Eiffel Tower",
		Country:   "France",
		City:      "Paris",
		BuildYear: intPtr(1889),
	}

	t.Run("success invalidates cache and notifies", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		notifier := new(mockNotifier)
		monumentService := NewMonumentService(mockRepo, mockCache, notifier)

		mockRepo.On("CreateMonument", mock.AnythingOfType("*model.Monument")).
			Run(func(args mock.Arguments) {
				m := args.Get(0).(*model.Monument)
				m.ID = 42
				m.Created = time.Now()
			}).Return(nil).Once()
		mockCache.On("Del", mock.Anything, monumentsCacheKey).
			Return(redis.NewIntResult(1, nil)).Once()
		notifier.On("NotifyNewMonument", mock.MatchedBy(func(m *model.Monument) bool {
			return m.ID == 42 && m.Title == "Eiffel Tower"
		})).Once()

		monument, err := monumentService.CreateMonument(payload)

		assert.NoError(t, err)
		assert.Equal(t, 42, monument.ID)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("nil notifier does not panic", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		mockRepo.On("CreateMonument", mock.Anything).Return(nil).Once()
		mockCache.On("Del", mock.Anything, monumentsCacheKey).
			Return(redis.NewIntResult(1, nil)).Once()

		assert.NotPanics(t, func() {
			_, err := monumentService.CreateMonument(payload)
			assert.NoError(t, err)
		})
	})

	t.Run("forbidden title never reaches the repository", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		bad := payload
		bad.Title = "Demo arch"
		_, err := monumentService.CreateMonument(bad)

		assert.Equal(t, ErrTitleForbiddenWord, err)
		mockRepo.AssertNotCalled(t, "CreateMonument")
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		dbErr := errors.New("connection reset")
		mockRepo.On("CreateMonument", mock.Anything).Return(dbErr).Once()

		_, err := monumentService.CreateMonument(payload)

		assert.Equal(t, dbErr, err)
	})
}

func TestMonumentService_ListMonuments(t *testing.T) {
	monuments := []*model.Monument{
		{ID: 1, Title: "Eiffel Tower", Country: "France", City: "Paris"},
		{ID: 2, Title: "Colosseum", Country: "Italy", City: "Rome"},
	}

	t.Run("cache miss hits the repository and stores the result", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		mockCache.On("Get", mock.Anything, monumentsCacheKey).
			Return(redis.NewStringResult("", redis.Nil)).Once()
		mockRepo.On("GetAllMonuments").Return(monuments, nil).Once()
		mockCache.On("Set", mock.Anything, monumentsCacheKey, mock.Anything, monumentsCacheTTL).
			Return(redis.NewStatusResult("OK", nil)).Once()

		result, err := monumentService.ListMonuments()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		cached, err := json.Marshal(monuments)
		assert.NoError(t, err)
		mockCache.On("Get", mock.Anything, monumentsCacheKey).
			Return(redis.NewStringResult(string(cached), nil)).Once()

		result, err := monumentService.ListMonuments()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Colosseum", result[1].Title)
		mockRepo.AssertNotCalled(t, "GetAllMonuments")
	})

	t.Run("no cache configured falls back to the repository", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		mockRepo.On("GetAllMonuments").Return(monuments, nil).Once()

		result, err := monumentService.ListMonuments()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestMonumentService_GetMonument(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		mockRepo.On("GetMonumentByID", 1).
			Return(&model.Monument{ID: 1, Title: "Eiffel Tower"}, nil).Once()

		monument, err := monumentService.GetMonument(1)

		assert.NoError(t, err)
		assert.Equal(t, "Eiffel Tower", monument.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		mockRepo.On("GetMonumentByID", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := monumentService.GetMonument(99)

		assert.Equal(t, ErrMonumentNotFound, err)
	})
}

func TestMonumentService_UpdateMonument(t *testing.T) {
	current := &model.Monument{ID: 1, Title: "Eiffel Tower", Country: "France", City: "Paris"}

	t.Run("merged payload is revalidated", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		mockRepo.On("GetMonumentByID", 1).Return(current, nil).Once()

		// Only the city changes, but it collides with the existing country.
		update := model.MonumentUpdate{City: strPtr("France")}
		_, err := monumentService.UpdateMonument(1, update)

		assert.Equal(t, ErrCityEqualsCountry, err)
		mockRepo.AssertNotCalled(t, "UpdateMonument")
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		update := model.MonumentUpdate{Title: strPtr("Tour Eiffel")}
		updated := &model.Monument{ID: 1, Title: "Tour Eiffel", Country: "France", City: "Paris"}

		mockRepo.On("GetMonumentByID", 1).Return(current, nil).Once()
		mockRepo.On("UpdateMonument", 1, update).Return(updated, nil).Once()
		mockCache.On("Del", mock.Anything, monumentsCacheKey).
			Return(redis.NewIntResult(1, nil)).Once()

		monument, err := monumentService.UpdateMonument(1, update)

		assert.NoError(t, err)
		assert.Equal(t, "Tour Eiffel", monument.Title)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		monumentService := NewMonumentService(mockRepo, nil, nil)

		mockRepo.On("GetMonumentByID", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := monumentService.UpdateMonument(99, model.MonumentUpdate{})

		assert.Equal(t, ErrMonumentNotFound, err)
	})
}

func TestMonumentService_DeleteMonument(t *testing.T) {
	t.Run("success invalidates cache", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		mockRepo.On("DeleteMonument", 1).Return(true, nil).Once()
		mockCache.On("Del", mock.Anything, monumentsCacheKey).
			Return(redis.NewIntResult(1, nil)).Once()

		err := monumentService.DeleteMonument(1)

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockMonumentRepo)
		mockCache := new(mockCacheClient)
		monumentService := NewMonumentService(mockRepo, mockCache, nil)

		mockRepo.On("DeleteMonument", 99).Return(false, nil).Once()

		err := monumentService.DeleteMonument(99)

		assert.Equal(t, ErrMonumentNotFound, err)
		mockCache.AssertNotCalled(t, "Del")
	})
}

func TestMonumentService_SearchMonuments(t *testing.T) {
	mockRepo := new(mockMonumentRepo)
	monumentService := NewMonumentService(mockRepo, nil, nil)

	expected := []*model.Monument{{ID: 1, Title: "Eiffel Tower"}}
	mockRepo.On("SearchMonuments", "eiffel", "", "").Return(expected, nil).Once()

	result, err := monumentService.SearchMonuments("eiffel", "", "")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}
