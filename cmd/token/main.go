// Command token issues a bearer token for the API when AUTH_JWT_SECRET is
// set. The token is printed to stdout.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/auth"
	"github.com/heartmarshall/tagebuch-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "owner", "token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("AUTH_JWT_SECRET is not set; the API is unauthenticated")
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, expires, err := jwt.GenerateToken(*subject)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", expires.Format(time.RFC3339))
}
