package configs

import "time"

// Auth configures bearer token verification for the admin API. Tokens are
// HS256 JWTs signed with JWTSecret and must carry the "admin" role.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTL is the lifetime of tokens issued by the admin-token command.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}
