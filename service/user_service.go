package service

import (
	"database/sql"
	"errors"

	"lifeseeker-api/model"
	"lifeseeker-api/repository"
)

var (
	ErrUserAlreadyExists = errors.New("user already registered")
	ErrUserNotFound      = errors.New("user not found")
)

// UserService handles registration, profile lookups, and the per-user
// capture date set.
type UserService struct {
	userRepo repository.IUserRepository
	hasher   *PasswordHasher
}

func NewUserService(userRepo repository.IUserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

func (s *UserService) Register(req *model.RegisterRequest) (*model.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(skip, limit int) ([]*model.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return s.userRepo.GetAllUsers(skip, limit)
}

// AddDates appends capture dates to the user's date set; duplicates are
// ignored.
func (s *UserService) AddDates(username string, dates []string) error {
	return s.userRepo.InsertDates(username, dates)
}

func (s *UserService) GetDates(username string) ([]string, error) {
	dates, err := s.userRepo.GetDates(username)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrUserNotFound
	}
	return dates, nil
}
