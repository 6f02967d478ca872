package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ClickRateLimit is the number of click requests accepted per client IP
	// per minute. Zero disables rate limiting.
	ClickRateLimit int `env:"CLICK_RATE_LIMIT" envDefault:"120"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
