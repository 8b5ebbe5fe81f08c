package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("MARKET_SERVER", "europe")
	t.Setenv("MARKET_CITIES", "")
	t.Setenv("ARCHIVE_ENABLED", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("API_KEY", "a-real-key")
	t.Setenv("DB_PASSWORD", "")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setValidEnv(t)
	t.Setenv("MARKET_SERVER", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "MARKET_SERVER")
}

func TestValidateEnv_ArchiveRequiresDatabase(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ARCHIVE_ENABLED", "true")
	for _, envVar := range ArchiveEnvVars {
		t.Setenv(envVar, "")
	}

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")

	t.Run("database url satisfies archive", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
		assert.NoError(t, ValidateEnv())
	})
}

func TestValidateEnv_EnumValues(t *testing.T) {
	tests := []struct {
		name    string
		server  string
		cities  string
		wantErr string
	}{
		{"valid", "west", "Martlock, Fort Sterling", ""},
		{"alias server", "eu", "", ""},
		{"unknown server", "moon", "", "MARKET_SERVER"},
		{"unknown city", "east", "Martlock,Atlantis", "Atlantis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv("MARKET_SERVER", tt.server)
			t.Setenv("MARKET_CITIES", tt.cities)

			err := ValidateEnv()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2, "Should have 2 warnings")
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_MissingAPIKey(t *testing.T) {
	setValidEnv(t)
	t.Setenv("API_KEY", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unauthenticated")
}
