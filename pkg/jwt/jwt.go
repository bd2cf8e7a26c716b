package jwt

import (
	"errors"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's expiry has passed
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSignature is returned when the signature does not verify
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrInvalidToken is returned for every other verification failure
	ErrInvalidToken = errors.New("invalid token")
)

// Claims holds the identity claims extracted from a verified token
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Config holds verification settings. Issuer and Audience are enforced
// only when set.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// providerClaims mirrors the token payload the identity provider signs
type providerClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	gojwt.RegisteredClaims
}

// Verifier validates provider-issued bearer tokens against a shared
// HMAC secret
type Verifier struct {
	secret []byte
	parser *gojwt.Parser
}

// NewVerifier creates a token verifier
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt: secret is required")
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
	}
	if cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, gojwt.WithAudience(cfg.Audience))
	}

	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: gojwt.NewParser(opts...),
	}, nil
}

// Verify checks the credential's signature and registered claims and
// returns the identity it asserts. The subject claim is mandatory.
func (v *Verifier) Verify(credential string) (*Claims, error) {
	var claims providerClaims
	_, err := v.parser.ParseWithClaims(credential, &claims, func(t *gojwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	return &Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
