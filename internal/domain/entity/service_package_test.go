package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePackage(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Create and start", func(t *testing.T) {
		pkg, err := NewServicePackage("Pro", "three devices", 1999, 30, 3, mockTime)
		require.NoError(t, err)
		pkg.ID = 4
		assert.Equal(t, "19.99", pkg.Price())
		assert.True(t, pkg.Active)

		up := NewUserPackage(7, pkg, mockTime)
		assert.Equal(t, uint64(4), up.PackageID)
		assert.Equal(t, UserPackageActive, up.Status)
		assert.Equal(t, fixedTime.AddDate(0, 0, 30), up.ExpiresAt)

		up.Extend(pkg, mockTime)
		assert.Equal(t, fixedTime.AddDate(0, 0, 60), up.ExpiresAt)
		assert.False(t, up.IsExpiredAt(fixedTime.AddDate(0, 0, 59)))
		assert.True(t, up.IsExpiredAt(fixedTime.AddDate(0, 0, 60)))
	})

	t.Run("Invalid fields", func(t *testing.T) {
		_, err := NewServicePackage(" ", "", -1, 0, -2, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
