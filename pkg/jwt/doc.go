// Package jwt verifies bearer tokens issued by the external identity
// provider.
//
// Realmkeep never mints access tokens of its own. The Verifier checks the
// signature, expiry, and (when configured) issuer and audience of tokens the
// provider signed with a shared HMAC secret, and surfaces the subject,
// email, and display name as Claims.
//
// # Error Handling
//
// Verification failures map to three sentinel errors so callers can
// distinguish an expired token (ErrTokenExpired) and a bad signature
// (ErrInvalidSignature) from every other malformation (ErrInvalidToken).
package jwt
