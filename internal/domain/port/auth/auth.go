package auth

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// Claims is the identity carried by an access token
type Claims struct {
	UserID    uint64
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenIssuer issues and verifies access tokens
type TokenIssuer interface {
	Issue(user *entity.User) (token string, expiresAt time.Time, err error)
	// Verify returns ErrUnauthorized for malformed, expired or foreign tokens
	Verify(token string) (*Claims, error)
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
