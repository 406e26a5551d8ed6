package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	FourthwallBaseURL string
	FourthwallUser    string
	FourthwallPass    string

	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	// SyncSchedule is a cron spec for the periodic membership sync.
	// Empty disables the scheduled sync; the HTTP trigger still works.
	SyncSchedule string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Members        string
	Verifications  string
	MemberInstalls string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Members:        getEnv("DYNAMO_TABLE_MEMBERS", "members"),
			Verifications:  getEnv("DYNAMO_TABLE_VERIFICATIONS", "verifications"),
			MemberInstalls: getEnv("DYNAMO_TABLE_MEMBER_INSTALLS", "member_installs"),
		},

		FourthwallBaseURL: getEnv("FOURTHWALL_BASE_URL", "https://api.fourthwall.com/open-api/v1.0"),
		FourthwallUser:    getEnv("FOURTHWALL_API_USER", ""),
		FourthwallPass:    getEnv("FOURTHWALL_API_PASS", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@example.com"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Quant Trading"),

		SyncSchedule: getEnv("SYNC_SCHEDULE", "@every 6h"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
