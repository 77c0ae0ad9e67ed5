package seeder

import "time"

// Config carries the database settings, populated from the environment.
type Config struct {
	ConnectionString string        `env:"SEED_PG_CONN_URL,required"`                      // ConnectionString is the connection string to the fixture database.
	Table            string        `env:"SEED_PG_TABLE" envDefault:"identifier_fixtures"` // Table is the fixture table name.
	RetryAttempts    int           `env:"SEED_PG_RETRY_ATTEMPTS" envDefault:"3"`          // RetryAttempts is the number of connection attempts.
	RetryInterval    time.Duration `env:"SEED_PG_RETRY_INTERVAL" envDefault:"5s"`         // RetryInterval is the base wait between attempts.
}
