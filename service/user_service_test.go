// service/user_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"lifeseeker-api/model"
)

func TestUserService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("ExistsByUsername", "nvtu").Return(false, nil).Once()
		userRepo.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
			// The stored password must be a hash, never the plaintext.
			return u.Username == "nvtu" && u.Password != "password123" && u.Password != ""
		})).Return(nil).Once()

		userService := NewUserService(userRepo, NewPasswordHasher(4))
		user, err := userService.Register(&model.RegisterRequest{
			Username: "nvtu",
			Name:     "John Doe",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "nvtu", user.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("already registered", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("ExistsByUsername", "nvtu").Return(true, nil).Once()

		userService := NewUserService(userRepo, NewPasswordHasher(4))
		_, err := userService.Register(&model.RegisterRequest{
			Username: "nvtu",
			Password: "password123",
		})

		assert.Equal(t, ErrUserAlreadyExists, err)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("repository error", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		expectedErr := errors.New("db error")
		userRepo.On("ExistsByUsername", "nvtu").Return(false, expectedErr).Once()

		userService := NewUserService(userRepo, NewPasswordHasher(4))
		_, err := userService.Register(&model.RegisterRequest{
			Username: "nvtu",
			Password: "password123",
		})

		assert.Equal(t, expectedErr, err)
	})
}

func TestUserService_GetDates(t *testing.T) {
	t.Run("sorted dates", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetDates", "nvtu").Return([]string{"2020-01-01", "2020-01-02"}, nil).Once()

		userService := NewUserService(userRepo, NewPasswordHasher(4))
		dates, err := userService.GetDates("nvtu")

		assert.NoError(t, err)
		assert.Equal(t, []string{"2020-01-01", "2020-01-02"}, dates)
	})

	t.Run("no dates means not found", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetDates", "nvtu").Return([]string{}, nil).Once()

		userService := NewUserService(userRepo, NewPasswordHasher(4))
		_, err := userService.GetDates("nvtu")

		assert.Equal(t, ErrUserNotFound, err)
	})
}

func TestUserService_ListUsers_ClampsLimit(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetAllUsers", 0, 100).Return([]*model.User{}, nil).Once()

	userService := NewUserService(userRepo, NewPasswordHasher(4))
	_, err := userService.ListUsers(-5, 10000)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
