package configs

// Redis configures the optional Redis connection used to guard tier
// assignment runs. An empty Addr disables the lock.
type Redis struct {
	// Addr accepts either a redis:// URL or host:port.
	Addr string `env:"ADDRESS"`
}
