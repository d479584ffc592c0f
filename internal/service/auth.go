package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/repository"
)

// jwtClaims extends dto.Claims with JWT registered claims for signing.
type jwtClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthConfig holds the token signing parameters.
type AuthConfig struct {
	// Secret is the HMAC signing key.
	Secret string
	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration
	// Issuer is stamped into every token.
	Issuer string
}

// AuthService provides authentication operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
	// TokenTTL exposes the configured token lifetime for response metadata.
	TokenTTL() time.Duration
}

// AuthServiceImpl implements AuthService with stateless HS256 tokens.
type AuthServiceImpl struct {
	users  repository.UserRepositoryInterface
	config AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepositoryInterface, config AuthConfig) AuthService {
	return &AuthServiceImpl{
		users:  users,
		config: config,
	}
}

// Register creates a new user and returns a signed token for it.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	if existing != nil {
		return "", nil, apperr.Conflict(i18n.ErrKeyUserExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Active:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("user_id", user.ID).
		Msg("user registered")
	return token, user, nil
}

// Login authenticates a user and returns a signed token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	if user == nil || !user.Active {
		return "", nil, apperr.Validation(i18n.ErrKeyInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation(i18n.ErrKeyInvalidCredentials)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	return token, user, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Validation(i18n.ErrKeyInvalidToken)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, apperr.Validation(i18n.ErrKeyInvalidToken)
	}
	return &claims.Claims, nil
}

// TokenTTL implements AuthService.
func (s *AuthServiceImpl) TokenTTL() time.Duration {
	return s.config.TokenTTL
}

func (s *AuthServiceImpl) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
