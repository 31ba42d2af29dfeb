package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from SLEEVE_* variables. Vendor keys also fall back to their
// unprefixed names, e.g. GEMINI_API_KEY.
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// PaletteFile optionally replaces the built-in palette catalog.
	PaletteFile string `envconfig:"PALETTE_FILE"`

	GeminiAPIKey     string `envconfig:"GEMINI_API_KEY"`
	GeminiBaseURL    string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GeminiAPIVersion string `envconfig:"GEMINI_API_VERSION" default:"v1beta"`

	ElevenLabsAPIKey  string `envconfig:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `envconfig:"ELEVENLABS_BASE_URL" default:"https://api.elevenlabs.io"`

	FalKey     string `envconfig:"FAL_KEY"`
	FalBaseURL string `envconfig:"FAL_BASE_URL" default:"https://queue.fal.run"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"180s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	PreferIPv4   bool          `envconfig:"PREFER_IPV4" default:"true"`

	// MusicBrainz lookups enrich filename based analysis.
	MusicBrainzEnabled bool `envconfig:"MUSICBRAINZ_ENABLED" default:"true"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("sleeve", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 180 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return cfg, nil
}

func ProvideConfig() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
