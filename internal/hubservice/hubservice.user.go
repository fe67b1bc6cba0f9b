// FilePath: internal/hubservice/hubservice.user.go
package hubservice

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates a new user account with a bcrypt password hash.
func (s *HubService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, errors.NewValidationError("name, email and password are required", nil)
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, errors.NewValidationError("e-mail already registered", nil)
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	cost := s.auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           nuts.NID("usr", 12),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	nuts.L.Infof("[UserService] Registered user %s (%s)", user.ID, user.Email)
	return user, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown
// e-mail and wrong password are indistinguishable to the caller.
func (s *HubService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewAuthError("invalid credentials", nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.NewAuthError("invalid credentials", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, errors.NewInternalError("failed to sign token", err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

func (s *HubService) issueToken(user *models.User) (string, error) {
	ttl := s.auth.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.auth.JWTSecret))
}
