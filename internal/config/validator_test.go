package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "focusquest")
	t.Setenv("API_KEY", "test-key")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setValidEnv(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_MissingSchemaVersion(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION")
}

func TestValidateEnv_SchemaVersionMismatch(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestValidateEnv_MissingVariables(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("API_KEY", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestValidateEnvWithWarnings_ExampleValues(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}
