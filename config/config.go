package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	GitHub   GitHubConfig
	Gemini   GeminiConfig
	OAuth    OAuthConfig
	MusicJam MusicJamConfig
	Deploy   DeployConfig
	Commands CommandsConfig
	App      AppConfig
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
	StaticDir        string
}

type StoreConfig struct {
	RedisURL string
}

type GitHubConfig struct {
	Token string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string
	SessionSecret      string
	SessionTTL         time.Duration
}

type MusicJamConfig struct {
	LiveURL      string
	ProbeSpec    string
	ProbeTTL     time.Duration
	ProbeTimeout time.Duration
}

type DeployConfig struct {
	SimulationDelay time.Duration
}

type CommandsConfig struct {
	WorkDir     string
	HistorySize int
	Timeout     time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFormat   string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8001"),
			CORSAllowOrigins: []string{getEnv("CORS_ALLOW_ORIGIN", "*")},
			StaticDir:        getEnv("STATIC_DIR", ""),
		},
		Store: StoreConfig{
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		GitHub: GitHubConfig{
			Token: getEnv("GITHUB_PAT", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_OAUTH_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_OAUTH_CLIENT_SECRET", ""),
			RedirectURL:        getEnv("GOOGLE_OAUTH_REDIRECT_URL", "http://localhost:3000/auth/callback"),
			SessionSecret:      getEnv("SESSION_JWT_SECRET", ""),
			SessionTTL:         getEnvAsDuration("SESSION_JWT_TTL", 24*time.Hour),
		},
		MusicJam: MusicJamConfig{
			LiveURL:      getEnv("MUSICJAM_URL", "https://musicjam.yazwho.com/"),
			ProbeSpec:    getEnv("MUSICJAM_PROBE_CRON", "0 */5 * * * *"),
			ProbeTTL:     getEnvAsDuration("MUSICJAM_PROBE_TTL", 10*time.Minute),
			ProbeTimeout: getEnvAsDuration("MUSICJAM_PROBE_TIMEOUT", 5*time.Second),
		},
		Deploy: DeployConfig{
			SimulationDelay: getEnvAsDuration("DEPLOY_SIMULATION_DELAY", 2*time.Second),
		},
		Commands: CommandsConfig{
			WorkDir:     getEnv("COMMAND_WORKDIR", "/app"),
			HistorySize: getEnvAsInt("COMMAND_HISTORY_SIZE", 100),
			Timeout:     getEnvAsDuration("COMMAND_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "console"),
			Version:     getEnv("APP_VERSION", "2.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Store.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.Commands.HistorySize <= 0 {
		return fmt.Errorf("COMMAND_HISTORY_SIZE must be positive")
	}

	return nil
}

// GitHubConfigured reports whether the GitHub proxy can be enabled.
func (c *Config) GitHubConfigured() bool { return c.GitHub.Token != "" }

// GeminiConfigured reports whether the AI proxy can be enabled.
func (c *Config) GeminiConfigured() bool { return c.Gemini.APIKey != "" }

// OAuthConfigured reports whether the Google OAuth routes can be enabled.
func (c *Config) OAuthConfigured() bool { return c.OAuth.GoogleClientID != "" }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
