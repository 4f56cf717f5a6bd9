package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/digitalmuseum/archive-api/internal/types"
)

// sessionClaims is the durable session record: everything needed to
// restore the identity without server-side state, so outstanding
// sessions survive a restart.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   types.Role `json:"role"`
	Avatar *string    `json:"avatar,omitempty"`
}

func (c *sessionClaims) user() types.User {
	return types.User{
		ID:     c.Subject,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
		Avatar: c.Avatar,
	}
}

func (s *Service) issueToken(user types.User) (string, error) {
	now := s.clock()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Avatar: user.Avatar,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

func (s *Service) parseToken(token string) (*sessionClaims, error) {
	claims := new(sessionClaims)

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("session token carries an unknown role")
	}

	return claims, nil
}
