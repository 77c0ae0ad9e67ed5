// Package seeder loads generated identifier fixtures into Postgres.
//
// It is the batch counterpart of the HTTP fixture service: rather than
// serving identifiers one request at a time, it fills a fixture table that
// staging environments and test databases query directly.
//
//	cfg := seeder.Config{ConnectionString: dsn}
//	s, err := seeder.Open(ctx, cfg)
//	defer s.Close()
//
//	rows, _ := seeder.Rows(idnumber.New(), "cpf", 1000)
//	if err := s.EnsureSchema(ctx); err != nil { ... }
//	inserted, err := s.Seed(ctx, rows)
//
// Open retries with a linear backoff so the tool survives a database that
// is still starting up. Inserts go through one pgx batch per Seed call.
package seeder
