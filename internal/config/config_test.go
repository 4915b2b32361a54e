package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 60, c.TokenTTLMinutes)
	assert.Equal(t, 10, c.BcryptCost)
	assert.NotEmpty(t, c.JWTSecret)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer viper.Reset()

	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, 15, c.TokenTTLMinutes)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Valid development config",
			config: Config{
				Port:            "8080",
				JWTSecret:       "your-secret-key-change-in-production",
				TokenTTLMinutes: 60,
				Env:             "development",
			},
		},
		{
			name: "Missing port",
			config: Config{
				JWTSecret:       "secret",
				TokenTTLMinutes: 60,
			},
			expectError: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Port:            "8080",
				TokenTTLMinutes: 60,
			},
			expectError: true,
		},
		{
			name: "Non-positive token TTL",
			config: Config{
				Port:      "8080",
				JWTSecret: "secret",
			},
			expectError: true,
		},
		{
			name: "Production rejects default secret",
			config: Config{
				Port:            "8080",
				JWTSecret:       "your-secret-key-change-in-production",
				TokenTTLMinutes: 60,
				Env:             "production",
				DBPassword:      "strong-db-password",
			},
			expectError: true,
		},
		{
			name: "Production rejects short secret",
			config: Config{
				Port:            "8080",
				JWTSecret:       "short-secret",
				TokenTTLMinutes: 60,
				Env:             "production",
				DBPassword:      "strong-db-password",
			},
			expectError: true,
		},
		{
			name: "Production accepts strong settings",
			config: Config{
				Port:            "8080",
				JWTSecret:       "secure-secret-at-least-32-chars-long",
				TokenTTLMinutes: 60,
				Env:             "production",
				DBPassword:      "strong-db-password",
				DBSSLMode:       "require",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
