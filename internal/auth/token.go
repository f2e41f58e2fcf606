package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tduyile04/document-management-api/internal/models"
)

// Claims is the JWT payload issued on sign-up and log-in.
type Claims struct {
	UserID    uint          `json:"userId"`
	UserEmail string        `json:"userEmail"`
	UserRole  models.RoleID `json:"userRole"`
	jwt.RegisteredClaims
}

// Identity converts the parsed claims into the identity the policy and
// service layers consume.
func (c *Claims) Identity() models.Identity {
	return models.Identity{
		UserID:    c.UserID,
		UserEmail: c.UserEmail,
		UserRole:  c.UserRole,
	}
}

// Tokens issues and verifies the HS256 identity tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl}
}

func (t *Tokens) Issue(user models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserRole:  user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
