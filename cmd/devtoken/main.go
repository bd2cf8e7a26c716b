package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// devtoken mints a bearer token signed with the shared secret, standing in
// for the identity provider during local development.
func main() {
	secret := flag.String("secret", "", "Shared HMAC secret (must match AUTH_JWT_SECRET)")
	subject := flag.String("subject", "auth0|dev-user", "Subject for the token")
	email := flag.String("email", "dev@realmkeep.dev", "Email for the token")
	name := flag.String("name", "Dev User", "Display name for the token")
	issuer := flag.String("issuer", "", "Issuer claim (optional)")
	audience := flag.String("audience", "", "Audience claim (optional)")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: -secret is required")
		fmt.Fprintln(os.Stderr, "\nPass the same value the server reads from AUTH_JWT_SECRET.")
		os.Exit(1)
	}

	expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)

	claims := gojwt.MapClaims{
		"sub":   *subject,
		"email": *email,
		"name":  *name,
		"iat":   time.Now().Unix(),
		"exp":   expTime.Unix(),
	}
	if *issuer != "" {
		claims["iss"] = *issuer
	}
	if *audience != "" {
		claims["aud"] = *audience
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"subject":      *subject,
			"email":        *email,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		fmt.Println("Dev Token Generated")
		fmt.Println("===================")
		fmt.Printf("Subject:  %s\n", *subject)
		fmt.Printf("Email:    %s\n", *email)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/worlds\n", token[:50]+"...")
	}
}
