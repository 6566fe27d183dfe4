package service

import (
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService owns profile maintenance and password changes.
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) GetUserByID(id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes only the supplied fields and returns the updated
// user.
func (s *UserService) UpdateProfile(userID, name, avatar string) (*model.User, error) {
	fields := map[string]interface{}{}
	if name != "" {
		fields["name"] = name
	}
	if avatar != "" {
		fields["avatar"] = avatar
	}

	if len(fields) > 0 {
		if err := s.UserRepo.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}

	return s.GetUserByID(userID)
}

func (s *UserService) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return util.ErrPasswordTooShort
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return util.ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.UpdateFields(userID, map[string]interface{}{"password": string(hashedPassword)})
}
