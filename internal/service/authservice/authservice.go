package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	userrepo "github.com/GlebRadaev/coursemarket/internal/repo/user-repo"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const (
	tokenTTL          = 12 * time.Hour
	minLoginLength    = 3
	maxLoginLength    = 50
	minPasswordLength = 8
)

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLogin       = fmt.Errorf("login must be %d to %d characters without spaces", minLoginLength, maxLoginLength)
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLength)
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		now:         time.Now,
	}
}

// NormalizeLogin makes logins case-insensitive.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

func validate(login, password string) error {
	n := utf8.RuneCountInString(login)
	if n < minLoginLength || n > maxLoginLength || strings.ContainsAny(login, " \t\n") {
		return ErrInvalidLogin
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	login = NormalizeLogin(login)
	if err := validate(login, password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("failed to look up login", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("failed to hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{Login: login, PasswordHash: hash})
	switch {
	case errors.Is(err, userrepo.ErrLoginTaken):
		return nil, ErrLoginTaken
	case err != nil:
		zap.L().Error("failed to create user", zap.String("login", login), zap.Error(err))
		return nil, err
	}

	zap.L().Info("student registered", zap.Int("user_id", user.ID))
	return user, nil
}

// Authenticate hides which of login or password was wrong.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	login = NormalizeLogin(login)
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("failed to look up login", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Debug("rejected credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to sign token", zap.Int("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
