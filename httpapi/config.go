package httpapi

import "time"

// Config carries the service settings, populated from the environment.
type Config struct {
	Addr            string        `env:"IDNUMBER_ADDR" envDefault:":8080"`          // Addr is the address the server listens on.
	ReadTimeout     time.Duration `env:"IDNUMBER_READ_TIMEOUT" envDefault:"30s"`    // ReadTimeout is the maximum duration for reading the entire request.
	WriteTimeout    time.Duration `env:"IDNUMBER_WRITE_TIMEOUT" envDefault:"30s"`   // WriteTimeout is the maximum duration before timing out writes of the response.
	IdleTimeout     time.Duration `env:"IDNUMBER_IDLE_TIMEOUT" envDefault:"120s"`   // IdleTimeout is the maximum time to wait for the next keep-alive request.
	ShutdownTimeout time.Duration `env:"IDNUMBER_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout is the time allowed for graceful shutdown.
	MaxCount        int           `env:"IDNUMBER_MAX_COUNT" envDefault:"1000"`      // MaxCount caps the count query parameter of the identifiers endpoint.
	Locale          string        `env:"IDNUMBER_LOCALE" envDefault:"en"`           // Locale selects the default template table.
}
