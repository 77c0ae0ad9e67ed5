// Command idnumseed fills a Postgres fixture table with generated
// identification numbers.
//
// The scheme and volume come from flags; the database connection comes from
// the environment (see seeder.Config), with an optional .env file:
//
//	SEED_PG_CONN_URL=postgres://... idnumseed -scheme cpf -n 1000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/idnumber"
	"github.com/dmitrymomot/idnumber/pkg/seeder"
)

func main() {
	var (
		scheme = flag.String("scheme", "", "Scheme slug to seed (required)")
		count  = flag.Int("n", 100, "Number of fixtures to insert")
		seed   = flag.Int64("seed", 0, "Deterministic seed; 0 seeds from the wall clock")
	)
	flag.Parse()

	if *scheme == "" {
		fmt.Fprintln(os.Stderr, "idnumseed: -scheme is required")
		flag.Usage()
		os.Exit(2)
	}
	if *count < 1 {
		fmt.Fprintln(os.Stderr, "idnumseed: -n must be at least 1")
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), log, *scheme, *count, *seed); err != nil {
		log.Error("seeding failed", slog.Any("error", err))
		if errors.Is(err, idnumber.ErrUnknownScheme) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, scheme string, count int, seed int64) error {
	// The .env file is optional; absence is the normal production case.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[seeder.Config]()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := make([]idnumber.Option, 0, 1)
	if seed != 0 {
		opts = append(opts, idnumber.WithSeed(seed))
	}
	rows, err := seeder.Rows(idnumber.New(opts...), scheme, count)
	if err != nil {
		return err
	}

	s, err := seeder.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	start := time.Now()
	inserted, err := s.Seed(ctx, rows)
	if err != nil {
		return err
	}

	log.Info("fixtures seeded",
		slog.String("scheme", scheme),
		slog.String("table", s.Table()),
		slog.Int64("inserted", inserted),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
