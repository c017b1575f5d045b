package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/dto"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository) AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me"
	}

	ttl := time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: ttl,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
