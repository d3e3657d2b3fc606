package config

import "github.com/mbkold/scoutline/internal/analytics"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Grid          GridConfig
	Anthropic     AnthropicConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
	Analytics     analytics.Params
}

type GridConfig struct {
	APIKey  string
	BaseURL string
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
