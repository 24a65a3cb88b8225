// Command mktoken mints a development access token in the Supabase claim
// shape, signed with the project JWT secret. Useful for exercising the API
// locally without going through Supabase Auth.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"linkvault/pkg/auth"
)

func main() {
	userID := flag.String("user", "", "user id to put in the sub claim (required)")
	email := flag.String("email", "dev@example.com", "email claim")
	role := flag.String("role", "authenticated", "role claim")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	secret := os.Getenv("SUPABASE_JWT_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		log.Fatal("SUPABASE_JWT_SECRET is required")
	}

	generator, err := auth.NewJWTGenerator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    os.Getenv("JWT_ISSUER"),
		Audience:  []string{"authenticated"},
	}, *expiry)
	if err != nil {
		log.Fatalf("create generator: %v", err)
	}

	token, err := generator.GenerateToken(*userID, *email, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
