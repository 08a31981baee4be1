package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/pkg/jwt"
)

// token mints a session token signed with JWT_ACCESS_SECRET for local use.
func main() {
	subject := flag.String("sub", "", "actor id to put in the subject claim")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatalf("refusing to mint tokens in production")
	}

	tok, err := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, *ttl).GenerateAccessToken(*subject, *email)
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}
	fmt.Println(tok)
}
