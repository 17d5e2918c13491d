package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/helper"
	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/repository"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService interface {
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(input dto.UserLogin) (*domain.User, string, error)
	GetProfile(userID uint) (*domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	auth   helper.Auth
	logSvc ActionLogService
}

func NewUserService(repo repository.UserRepository, auth helper.Auth, logSvc ActionLogService) UserService {
	return &userService{
		repo:   repo,
		auth:   auth,
		logSvc: logSvc,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	password := strings.TrimSpace(input.Password)

	email, err := utils.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if name == "" || password == "" {
		return nil, errors.New("invalid inputs")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, ErrEmailExists
	}

	hash, err := u.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        input.Phone,
		Status:       "active",
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrEmailExists
		}
		return nil, errors.New("failed to create user")
	}

	return usr, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, string, error) {
	password := strings.TrimSpace(input.Password)

	email, err := utils.NormalizeEmail(input.Email)
	if err != nil || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, "", ErrInvalidCredentials
	}

	if user.Status != "" && user.Status != "active" {
		return nil, "", errors.New("account is not active")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.auth.GenerateToken(int(user.ID), user.Email)
	if err != nil {
		return nil, "", errors.New("could not generate token")
	}

	if u.logSvc != nil {
		detail := fmt.Sprintf("login from %s", email)
		u.logSvc.Record(strconv.Itoa(int(user.ID)), user.Name, domain.ActionLogin, detail)
	}

	return user, token, nil
}

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("unauthorized")
	}
	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
