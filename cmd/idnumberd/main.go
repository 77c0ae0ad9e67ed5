// Command idnumberd serves identification number fixtures over HTTP.
//
// Configuration comes from the environment (see httpapi.Config), with an
// optional .env file in the working directory. The daemon exposes the
// routes documented in the httpapi package and shuts down gracefully on
// SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/idnumber"
	"github.com/dmitrymomot/idnumber/httpapi"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

type appConfig struct {
	HTTP      httpapi.Config
	LogLevel  string         `env:"IDNUMBER_LOG_LEVEL" envDefault:"info"`  // LogLevel is the minimum level logged: debug, info, warn or error.
	LogFormat string         `env:"IDNUMBER_LOG_FORMAT" envDefault:"json"` // LogFormat selects the slog handler: json or text.
	Seed      int64          `env:"IDNUMBER_SEED" envDefault:"0"`          // Seed pins the process-wide stream; 0 seeds from the wall clock.
}

func main() {
	// The .env file is optional; absence is the normal production case.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[appConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "idnumberd: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idnumberd: %v\n", err)
		os.Exit(1)
	}

	table, err := locales.Load(cfg.HTTP.Locale)
	if err != nil {
		log.Error("failed to load locale", slog.String("locale", cfg.HTTP.Locale), slog.Any("error", err))
		os.Exit(1)
	}

	opts := []idnumber.Option{idnumber.WithTable(table)}
	if cfg.Seed != 0 {
		opts = append(opts, idnumber.WithSeed(cfg.Seed))
		log.Warn("running with a fixed seed, responses repeat across restarts", slog.Int64("seed", cfg.Seed))
	}

	api := httpapi.NewAPI(idnumber.New(opts...), log, cfg.HTTP)
	srv := httpapi.NewServer(cfg.HTTP, log)

	if err := srv.Run(context.Background(), api.Router()); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}
	return nil, fmt.Errorf("log format %q: want json or text", format)
}
