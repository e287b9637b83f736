// Command token выпускает access token игрока для локальной отладки API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/config/env"
	"kingdom_backend/pkg/token"
)

func main() {
	player := flag.String("player", "", "player uuid, new one if empty")
	ttl := flag.Duration("ttl", 0, "token lifetime, ACCESS_TOKEN_DURATION if zero")
	envPath := flag.String("env", ".env", "path to .env")
	flag.Parse()

	if err := config.Load(*envPath); err != nil {
		log.WithError(err).Warn("error loading .env file")
	}

	cfg, err := env.NewJWTConfig()
	if err != nil {
		log.WithError(err).Fatal("jwt config")
	}

	id := uuid.New()
	if *player != "" {
		id, err = uuid.Parse(*player)
		if err != nil {
			log.WithError(err).Fatal("invalid player id")
		}
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.AccessTokenDuration()
	}

	tok, err := token.GenerateAccessToken(id, cfg.AccessTokenSecretKey(), lifetime)
	if err != nil {
		log.WithError(err).Fatal("sign token")
	}

	fmt.Fprintf(os.Stderr, "player %s, expires %s\n", id, time.Now().Add(lifetime).Format(time.RFC3339))
	fmt.Println(tok)
}
