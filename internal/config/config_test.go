package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENCRYPTION_KEY", "abc123")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_VERIFY_SERVICE_SID", "VA123")
}

func TestLoad_MissingSecretsRefusesToStart(t *testing.T) {
	setRequired(t)
	t.Setenv("ENCRYPTION_KEY", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENCRYPTION_KEY")
	assert.Contains(t, err.Error(), "TWILIO_AUTH_TOKEN")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"APP_PORT", "INSTITUTION_DOMAIN", "DYNAMO_TABLE_REVIEWS", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "gatech.edu", cfg.InstitutionDomain)
	assert.Equal(t, "reviews", cfg.DynamoTables.Reviews)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("INSTITUTION_DOMAIN", "example.edu")
	t.Setenv("DYNAMO_TABLE_REVIEWS", "reviews_test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "example.edu", cfg.InstitutionDomain)
	assert.Equal(t, "reviews_test", cfg.DynamoTables.Reviews)
}
