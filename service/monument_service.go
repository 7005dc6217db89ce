package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"monumento-api/logger"
	"monumento-api/model"
	"monumento-api/repository"
)

var (
	ErrMonumentNotFound   = errors.New("monument not found")
	ErrTitleForbiddenWord = errors.New("title contains forbidden words")
	ErrCityEqualsCountry  = errors.New("city and country must be different")
	ErrBuildYearInFuture  = errors.New("build year cannot be in the future")
)

// forbiddenTitleWords are rejected anywhere in a monument title.
var forbiddenTitleWords = []string{"test", "fake", "demo", "example"}

const monumentsCacheKey = "monuments:all"
const monumentsCacheTTL = 10 * time.Minute

// INotifier is the broadcast primitive the realtime channel exposes to
// resource services.
type INotifier interface {
	NotifyNewMonument(monument *model.Monument)
}

// MonumentService handles monument business logic: CRUD, search, the
// validation rules that go beyond field shapes, list caching and creation
// broadcasts.
type MonumentService struct {
	repo     repository.IMonumentRepository
	cache    ICacheClient
	notifier INotifier
}

func NewMonumentService(repo repository.IMonumentRepository, cache ICacheClient, notifier INotifier) *MonumentService {
	return &MonumentService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
	}
}

func validateMonumentRules(title, country, city string, buildYear *int) error {
	lowerTitle := strings.ToLower(title)
	for _, word := range forbiddenTitleWords {
		if strings.Contains(lowerTitle, word) {
			return ErrTitleForbiddenWord
		}
	}

	if strings.EqualFold(city, country) {
		return ErrCityEqualsCountry
	}

	if buildYear != nil && *buildYear > time.Now().Year() {
		return ErrBuildYearInFuture
	}

	return nil
}

func (s *MonumentService) invalidateListCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), monumentsCacheKey)
	}
}

// CreateMonument validates the payload, stores it, invalidates the list
// cache and broadcasts the creation to every connected realtime client.
func (s *MonumentService) CreateMonument(payload model.MonumentPayload) (*model.Monument, error) {
	if err := validateMonumentRules(payload.Title, payload.Country, payload.City, payload.BuildYear); err != nil {
		return nil, err
	}

	monument := &model.Monument{
		Title:       payload.Title,
		Country:     payload.Country,
		City:        payload.City,
		BuildYear:   payload.BuildYear,
		Picture:     payload.Picture,
		Description: payload.Description,
	}
	if err := s.repo.CreateMonument(monument); err != nil {
		return nil, err
	}

	s.invalidateListCache()

	// The broadcast is a side effect of an already-successful creation;
	// it must never fail the request.
	if s.notifier != nil {
		s.notifier.NotifyNewMonument(monument)
	} else {
		logger.Log.Warn("Unable to send notification: realtime hub is not configured")
	}

	return monument, nil
}

// ListMonuments returns all monuments, using a cache-aside strategy.
func (s *MonumentService) ListMonuments() ([]*model.Monument, error) {
	ctx := context.Background()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, monumentsCacheKey).Result()
		if err == nil {
			var monuments []*model.Monument
			if err := json.Unmarshal([]byte(cached), &monuments); err == nil {
				return monuments, nil
			}
		}
	}

	monuments, err := s.repo.GetAllMonuments()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(monuments); err == nil {
			s.cache.Set(ctx, monumentsCacheKey, data, monumentsCacheTTL)
		}
	}

	return monuments, nil
}

func (s *MonumentService) GetMonument(id int) (*model.Monument, error) {
	monument, err := s.repo.GetMonumentByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMonumentNotFound
		}
		return nil, err
	}
	return monument, nil
}

// SearchMonuments is not cached; criteria combinations are too sparse to be
// worth the keys.
func (s *MonumentService) SearchMonuments(title, country, city string) ([]*model.Monument, error) {
	return s.repo.SearchMonuments(title, country, city)
}

func (s *MonumentService) UpdateMonument(id int, update model.MonumentUpdate) (*model.Monument, error) {
	current, err := s.repo.GetMonumentByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMonumentNotFound
		}
		return nil, err
	}

	title := current.Title
	if update.Title != nil {
		title = *update.Title
	}
	country := current.Country
	if update.Country != nil {
		country = *update.Country
	}
	city := current.City
	if update.City != nil {
		city = *update.City
	}
	buildYear := current.BuildYear
	if update.BuildYear != nil {
		buildYear = update.BuildYear
	}
	if err := validateMonumentRules(title, country, city, buildYear); err != nil {
		return nil, err
	}

	monument, err := s.repo.UpdateMonument(id, update)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMonumentNotFound
		}
		return nil, err
	}

	s.invalidateListCache()
	return monument, nil
}

func (s *MonumentService) DeleteMonument(id int) error {
	deleted, err := s.repo.DeleteMonument(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMonumentNotFound
	}

	s.invalidateListCache()
	return nil
}
