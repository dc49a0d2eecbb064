package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
// It is built once at startup and injected; nothing reads the environment
// after Load returns.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	// EncryptionKey is the hex-encoded 32-byte AES key used to derive
	// author IDs from usernames.
	EncryptionKey string

	TwilioAccountSID       string
	TwilioAuthToken        string
	TwilioVerifyServiceSID string

	// InstitutionDomain is the email domain appended to submitted usernames
	// when deriving the verification recipient.
	InstitutionDomain string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each document type.
type DynamoTables struct {
	Courses   string
	Semesters string
	Programs  string
	Reviews   string
}

// Load reads all configuration from environment variables. It returns an
// error naming every missing required secret; the process must not serve
// traffic in that case.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Courses:   getEnv("DYNAMO_TABLE_COURSES", "courses"),
			Semesters: getEnv("DYNAMO_TABLE_SEMESTERS", "semesters"),
			Programs:  getEnv("DYNAMO_TABLE_PROGRAMS", "programs"),
			Reviews:   getEnv("DYNAMO_TABLE_REVIEWS", "reviews"),
		},

		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),

		TwilioAccountSID:       os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:        os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioVerifyServiceSID: os.Getenv("TWILIO_VERIFY_SERVICE_SID"),

		InstitutionDomain: getEnv("INSTITUTION_DOMAIN", "gatech.edu"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	var missing []string
	for _, req := range []struct{ name, value string }{
		{"ENCRYPTION_KEY", cfg.EncryptionKey},
		{"TWILIO_ACCOUNT_SID", cfg.TwilioAccountSID},
		{"TWILIO_AUTH_TOKEN", cfg.TwilioAuthToken},
		{"TWILIO_VERIFY_SERVICE_SID", cfg.TwilioVerifyServiceSID},
	} {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
