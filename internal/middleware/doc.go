// Package middleware provides HTTP middleware for the Realmkeep API.
//
// Middlewares wrap http.Handler and compose through Chain. The standard
// stack applied to every route is request ID propagation, request logging,
// panic recovery, CORS, a per-request timeout, and gzip compression.
// Resource routes additionally wrap in Auth, which verifies bearer tokens
// issued by the external identity provider and places the subject in the
// request context.
//
// # Context Values
//
// Auth stores the verified subject under SubjectIDKey, the email under
// SubjectEmailKey, and the full claims under ClaimsKey. Handlers read them
// through GetSubjectID, GetSubjectEmail, and GetClaims.
package middleware
