// Command admintoken prints a bearer token for the admin API signed with
// AUTH_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"erogram-ads/internal/auth"
	"erogram-ads/internal/config"
)

func main() {
	subject := flag.String("subject", "", "operator name recorded in the token")
	role := flag.String("role", auth.RoleAdmin, "role claim")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: admintoken -subject NAME [-role ROLE]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	jm, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		slog.Error("jwt manager", slog.Any("error", err))
		os.Exit(1)
	}
	token, err := jm.GenerateToken(*subject, *role)
	if err != nil {
		slog.Error("generate token", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(token)
}
