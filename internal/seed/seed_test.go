package seed

import (
	"testing"

	"fitgpt/internal/config"
	"fitgpt/internal/database"
	"fitgpt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAndClear(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	db, err := database.Connect(&config.Config{Env: "test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	s := NewSeeder(db, Options{NumUsers: 3, ItemsPerUser: 2, SkipBcrypt: true})
	require.NoError(t, s.Seed())

	var userCount, itemCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.ClothingItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 3, userCount)
	assert.GreaterOrEqual(t, itemCount, int64(3))

	// Every item belongs to an existing user.
	var orphans int64
	require.NoError(t, db.Model(&models.ClothingItem{}).
		Where("owner_id NOT IN (SELECT id FROM users)").
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	require.NoError(t, s.ClearAll())
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)
}
