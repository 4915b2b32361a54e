package service

import (
	"testing"
	"time"

	"fitgpt/internal/auth"
	"fitgpt/internal/config"
	"fitgpt/internal/database"
	"fitgpt/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	items    repository.ItemRepository
	auth     *AuthService
	user     *UserService
	wardrobe *WardrobeService
}

// newTestEnv wires the full service stack against a fresh in-memory SQLite
// database. MinCost keeps bcrypt fast in tests.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(&config.Config{Env: "test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService("test-secret-key", time.Hour)

	return &testEnv{
		db:       db,
		users:    users,
		items:    items,
		auth:     NewAuthService(users, hasher, tokens),
		user:     NewUserService(users),
		wardrobe: NewWardrobeService(items),
	}
}
