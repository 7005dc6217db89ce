package service

import (
	"database/sql"
	"errors"

	"monumento-api/logger"
	"monumento-api/model"
	"monumento-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrFavoriteAlreadyExists = errors.New("this monument is already in your favorites")
	ErrFavoriteNotFound      = errors.New("this monument is not in your favorites")
)

// FavoriteService manages the favorites relation between users and
// monuments.
type FavoriteService struct {
	favoriteRepo repository.IFavoriteRepository
	monumentRepo repository.IMonumentRepository
	userRepo     repository.IUserRepository
}

// FavoriteWithMonument pairs a favorite row with its monument.
type FavoriteWithMonument struct {
	Favorite *model.Favorite `json:"favorite"`
	Monument *model.Monument `json:"monument"`
}

// UserFavorites is the listing shape the API returns.
type UserFavorites struct {
	Favorites              []*model.Favorite      `json:"favorites"`
	Monuments              []*model.Monument      `json:"monuments"`
	FavoritesWithMonuments []FavoriteWithMonument `json:"favoritesWithMonuments"`
}

func NewFavoriteService(favoriteRepo repository.IFavoriteRepository, monumentRepo repository.IMonumentRepository, userRepo repository.IUserRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		monumentRepo: monumentRepo,
		userRepo:     userRepo,
	}
}

func (s *FavoriteService) lookupUser(username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddFavorite adds a monument to the user's favorites and returns both the
// favorite and the monument it points at.
func (s *FavoriteService) AddFavorite(username string, monumentID int) (*FavoriteWithMonument, error) {
	user, err := s.lookupUser(username)
	if err != nil {
		return nil, err
	}

	monument, err := s.monumentRepo.GetMonumentByID(monumentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMonumentNotFound
		}
		return nil, err
	}

	if _, err := s.favoriteRepo.GetFavoriteByUserAndMonument(user.ID, monumentID); err == nil {
		return nil, ErrFavoriteAlreadyExists
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	favorite := &model.Favorite{
		UserID:     user.ID,
		MonumentID: monumentID,
	}
	if err := s.favoriteRepo.CreateFavorite(favorite); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"username":    username,
		"monument_id": monumentID,
	}).Info("Monument added to favorites")

	return &FavoriteWithMonument{Favorite: favorite, Monument: monument}, nil
}

// RemoveFavorite deletes the favorite and returns the monument it pointed
// at.
func (s *FavoriteService) RemoveFavorite(username string, monumentID int) (*model.Monument, error) {
	user, err := s.lookupUser(username)
	if err != nil {
		return nil, err
	}

	if _, err := s.favoriteRepo.GetFavoriteByUserAndMonument(user.ID, monumentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	monument, err := s.monumentRepo.GetMonumentByID(monumentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMonumentNotFound
		}
		return nil, err
	}

	if err := s.favoriteRepo.DeleteFavorite(user.ID, monumentID); err != nil {
		return nil, err
	}

	return monument, nil
}

// GetUserFavorites lists the user's favorites together with the monuments
// they reference.
func (s *FavoriteService) GetUserFavorites(username string) (*UserFavorites, error) {
	user, err := s.lookupUser(username)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.GetFavoritesByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	result := &UserFavorites{
		Favorites:              []*model.Favorite{},
		Monuments:              []*model.Monument{},
		FavoritesWithMonuments: []FavoriteWithMonument{},
	}
	if len(favorites) == 0 {
		return result, nil
	}

	ids := make([]int, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.MonumentID)
	}

	monuments, err := s.monumentRepo.GetMonumentsByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*model.Monument, len(monuments))
	for _, m := range monuments {
		byID[m.ID] = m
	}

	result.Favorites = favorites
	result.Monuments = monuments
	for _, f := range favorites {
		result.FavoritesWithMonuments = append(result.FavoritesWithMonuments, FavoriteWithMonument{
			Favorite: f,
			Monument: byID[f.MonumentID],
		})
	}

	return result, nil
}
