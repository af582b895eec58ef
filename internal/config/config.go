package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Firebase project & credentials
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID" default:"evcharging-aef0c"`
	CredentialsFile       string `envconfig:"FIREBASE_CREDENTIALS_FILE" default:"serviceAccountKey.json"`
	CredentialsSecret     string `envconfig:"FIREBASE_CREDENTIALS_SECRET"`
	FirestoreEmulatorHost string `envconfig:"FIRESTORE_EMULATOR_HOST"`

	// Seeding behaviour
	FixturesFile      string `envconfig:"SEED_FIXTURES_FILE"`
	TimeoutSec        int    `envconfig:"SEED_TIMEOUT_SEC" default:"60"`
	ExitZeroOnFailure bool   `envconfig:"SEED_EXIT_ZERO_ON_FAILURE" default:"false"`
	DryRun            bool   `envconfig:"SEED_DRY_RUN" default:"false"`

	// Run report (optional)
	ReportTopic        string `envconfig:"SEED_REPORT_TOPIC"`
	PubSubEmulatorHost string `envconfig:"PUBSUB_EMULATOR_HOST"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsesEmulator reports whether Firestore traffic goes to a local emulator.
func (c *Config) UsesEmulator() bool {
	return c.FirestoreEmulatorHost != ""
}

// Timeout returns the upper bound for the whole seeding run.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}
