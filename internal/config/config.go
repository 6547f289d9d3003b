package config

import (
	"fmt"
	"time"

	"wordwiz/internal/words"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Game       GameConfig
	Logging    LoggingConfig
	Dictionary DictionaryConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string
	Port string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	TotalRounds       int
	MidSummaryRound   int
	RoundLeadIn       time.Duration // delay before each round's answer window opens
	MidSummaryDisplay time.Duration // how long standings stay up before auto-advance
	RoomCodeLength    int
	RoomIdleTimeout   time.Duration // rooms with no connections are reaped after this
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// DictionaryConfig holds word-validity oracle configuration
type DictionaryConfig struct {
	BaseURL string // empty disables the remote fallback
	Timeout time.Duration
}

// Default returns the configuration defaults; cmd/server overrides them from
// flags and environment variables.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Env:  "development",
		},
		Game: GameConfig{
			TotalRounds:       10,
			MidSummaryRound:   5,
			RoundLeadIn:       3 * time.Second,
			MidSummaryDisplay: 8 * time.Second,
			RoomCodeLength:    4,
			RoomIdleTimeout:   2 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Dictionary: DictionaryConfig{
			BaseURL: words.DefaultDictionaryURL,
			Timeout: 5 * time.Second,
		},
	}
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	if c.Game.TotalRounds < 1 {
		return fmt.Errorf("total rounds must be at least 1, got %d", c.Game.TotalRounds)
	}
	if c.Game.MidSummaryRound < 1 || c.Game.MidSummaryRound > c.Game.TotalRounds {
		return fmt.Errorf("mid-summary round %d outside 1-%d", c.Game.MidSummaryRound, c.Game.TotalRounds)
	}
	if c.Game.RoomCodeLength < 3 {
		return fmt.Errorf("room code length must be at least 3, got %d", c.Game.RoomCodeLength)
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
