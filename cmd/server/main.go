package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wordwiz/internal/app"
	"wordwiz/internal/config"
	httpTransport "wordwiz/internal/transport/http"
	"wordwiz/internal/transport/ws"
	"wordwiz/internal/words"
)

const releaseVersion = "0.1.0"

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDWIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordwiz",
		Short:         "A multiplayer timed word-game server.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Server.Host, "host", "H", cfg.Server.Host, "address to bind to (env: WORDWIZ_HOST)")
	fs.StringVarP(&cfg.Server.Port, "port", "p", cfg.Server.Port, "port to listen on (env: WORDWIZ_PORT)")
	fs.StringVar(&cfg.Server.Env, "env", cfg.Server.Env, "environment, development or production (env: WORDWIZ_ENV)")
	fs.IntVar(&cfg.Game.TotalRounds, "total-rounds", cfg.Game.TotalRounds, "rounds per game (env: WORDWIZ_TOTAL_ROUNDS)")
	fs.DurationVar(&cfg.Game.RoomIdleTimeout, "room-idle-timeout", cfg.Game.RoomIdleTimeout, "time before abandoned rooms are removed (env: WORDWIZ_ROOM_IDLE_TIMEOUT)")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error (env: WORDWIZ_LOG_LEVEL)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text or json (env: WORDWIZ_LOG_FORMAT)")
	fs.StringVar(&cfg.Dictionary.BaseURL, "dictionary-url", cfg.Dictionary.BaseURL, "dictionary API base URL, empty to disable (env: WORDWIZ_DICTIONARY_URL)")
	fs.DurationVar(&cfg.Dictionary.Timeout, "dictionary-timeout", cfg.Dictionary.Timeout, "dictionary API request timeout (env: WORDWIZ_DICTIONARY_TIMEOUT)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordwiz v{{.Version}}\n")

	return cmd
}

func run(cfg *config.Config) error {
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	logger.Info("starting wordwiz server",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	clock := clockwork.NewRealClock()
	validator := words.NewValidator(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)

	directory := app.NewRoomDirectory(cfg.Game, validator, clock, logger)
	defer directory.Close()

	registry := app.NewConnRegistry()
	gateway := ws.NewGateway(directory, registry, logger)

	server := httpTransport.NewServer(cfg, directory, gateway, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
