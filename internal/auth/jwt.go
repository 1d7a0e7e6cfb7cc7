// Package auth validates the access tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptyToken is returned when no token string is given.
var ErrEmptyToken = errors.New("token is empty")

// JWTManager validates HS256 access tokens. It also issues them for
// operators' tooling and tests.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Identity is what an access token says about its bearer.
type Identity struct {
	UserID uuid.UUID
	Role   string
	Name   string
	Email  string
}

// accessClaims extends standard JWT claims with the user's role and profile.
type accessClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with user ID as subject and
// role as a custom claim.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return m.Issue(Identity{UserID: userID, Role: role})
}

// Issue creates a signed HS256 JWT carrying id.
func (m *JWTManager) Issue(id Identity) (string, error) {
	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:  id.Role,
		Name:  id.Name,
		Email: id.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the user ID and role if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	id, err := m.Parse(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id.UserID, id.Role, nil
}

// ValidateToken is ValidateAccessToken for HTTP middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return m.ValidateAccessToken(token)
}

// Parse validates tokenString and returns the identity it carries.
func (m *JWTManager) Parse(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Identity{
		UserID: userID,
		Role:   claims.Role,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
