package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
)

func TestJWTIssuer(t *testing.T) {
	issued := time.Now().UTC().Truncate(time.Second)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(issued).Maybe()

	issuerUnderTest, err := NewJWTIssuer("secret", time.Hour, tp)
	require.NoError(t, err)

	user := &entity.User{ID: 42, Role: entity.RoleAdmin}
	token, expiresAt, err := issuerUnderTest.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), expiresAt)

	t.Run("Valid token", func(t *testing.T) {
		claims, err := issuerUnderTest.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, entity.RoleAdmin, claims.Role)
		assert.True(t, claims.ExpiresAt.Equal(expiresAt))
	})

	t.Run("Foreign secret", func(t *testing.T) {
		other, err := NewJWTIssuer("other", time.Hour, tp)
		require.NoError(t, err)
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Expired", func(t *testing.T) {
		later := mcore.NewMockTimeProvider(t)
		later.EXPECT().Now().Return(issued.Add(2 * time.Hour)).Maybe()
		verifier, err := NewJWTIssuer("secret", time.Hour, later)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Wrong algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "42", "role": "admin", "iss": issuer, "exp": expiresAt.Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuerUnderTest.Verify(unsigned)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuerUnderTest.Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestNewJWTIssuerRequiresSecret(t *testing.T) {
	_, err := NewJWTIssuer("", time.Hour, mcore.NewMockTimeProvider(t))
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, h.Compare(hash, "correct horse"))
	assert.False(t, h.Compare(hash, "wrong horse"))
	assert.False(t, h.Compare("not-a-hash", "correct horse"))

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}
