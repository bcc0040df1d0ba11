package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every configuration parameter read from environment variables.
type Config struct {
	DBPath string `envconfig:"DB_PATH" default:"risk_tracker.db"`

	HTTPPort     string `envconfig:"HTTP_PORT" default:"4242"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Schedule for the nightly dossier archive upload.
	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 3 * * *"`

	ArchiveS3Key    string `envconfig:"ARCHIVE_S3_KEY" required:"true"`
	ArchiveS3Secret string `envconfig:"ARCHIVE_S3_SECRET" required:"true"`
	ArchiveS3URL    string `envconfig:"ARCHIVE_S3_URL" required:"true"`
	ArchiveS3Region string `envconfig:"ARCHIVE_S3_REGION" required:"true"`
	ArchiveS3Bucket string `envconfig:"ARCHIVE_S3_BUCKET" required:"true"`

	// EPPO Global Database REST API, used to verify crop reference codes.
	EPPOBaseURL   string `envconfig:"EPPO_BASE_URL" default:"https://data.eppo.int/api/rest/1.0"`
	EPPOAuthToken string `envconfig:"EPPO_AUTH_TOKEN"`
}

// DSN returns the SQLite data source name. WAL journal mode, busy timeout for
// the shared connection, foreign keys on.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", c.DBPath)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
