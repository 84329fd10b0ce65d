// Package auth issues access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// DefaultTokenTTL applies when no ttl is configured
const DefaultTokenTTL = 24 * time.Hour

const issuer = "agent-console"

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ authport.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates an issuer. The secret must not be empty.
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, timeProvider: timeProvider}, nil
}

// Issue signs a token for the user
func (j *JWTIssuer) Issue(user *entity.User) (string, time.Time, error) {
	now := j.timeProvider.Now()
	expiresAt := now.Add(j.ttl)
	claims := accessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify returns ErrUnauthorized for malformed, expired or foreign tokens
func (j *JWTIssuer) Verify(token string) (*authport.Claims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.timeProvider.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, errs.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	role := entity.Role(claims.Role)
	if !entity.IsValidRole(string(role)) {
		return nil, errs.ErrUnauthorized
	}
	return &authport.Claims{UserID: userID, Role: role, ExpiresAt: claims.ExpiresAt.Time}, nil
}
