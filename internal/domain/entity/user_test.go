package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Jane Doe ", "Jane@Example.com", "hash", RoleUser, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.Active)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.False(t, user.IsAdmin())
	})

	t.Run("Collects every invalid field", func(t *testing.T) {
		user, err := NewUser("", "not-an-email", "", Role("root"), mockTime)

		assert.Nil(t, user)
		var vErr *errs.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "name")
		assert.Contains(t, vErr.Fields, "email")
		assert.Contains(t, vErr.Fields, "password")
		assert.Contains(t, vErr.Fields, "role")
	})
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"User@Example.COM", "user@example.com", true},
		{"  a@b.co ", "a@b.co", true},
		{"Jane <jane@example.com>", "", false},
		{"missing-at.example.com", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := NormalizeEmail(tc.input)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleAdmin.HasPermission(PermWalletApprove))
	assert.True(t, RoleAdmin.HasPermission(PermUsersManage))
	assert.True(t, RoleUser.HasPermission(PermChatUse))
	assert.False(t, RoleUser.HasPermission(PermWalletApprove))

	inactive := &User{Role: RoleAdmin, Active: false}
	assert.False(t, inactive.Can(PermWalletApprove))

	assert.True(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("superuser"))
}
