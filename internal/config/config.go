package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/mbkold/scoutline/internal/analytics"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	getEnvFloat := func(key string, fallback float64) float64 {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Fatalf("Error: Environment variable %s is not a valid float: %v", key, err)
		}
		return f
	}

	defaults := analytics.DefaultParams()
	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		Grid: GridConfig{
			APIKey:  getEnv("GRID_API_KEY"),
			BaseURL: getEnvDefault("GRID_BASE_URL", "https://api.grid.gg"),
		},
		Anthropic: AnthropicConfig{
			APIKey: getEnv("ANTHROPIC_API_KEY"),
			Model:  getEnvDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
		Analytics: analytics.Params{
			Weights: analytics.Weights{
				CombatScore:       getEnvFloat("WEIGHT_COMBAT_SCORE", defaults.Weights.CombatScore),
				KillParticipation: getEnvFloat("WEIGHT_KILL_PARTICIPATION", defaults.Weights.KillParticipation),
				RoleConsistency:   getEnvFloat("WEIGHT_ROLE_CONSISTENCY", defaults.Weights.RoleConsistency),
			},
			DecayLambda: getEnvFloat("DECAY_LAMBDA", defaults.DecayLambda),
		},
	}
	return cfg
}
