package model

// Scope identifies the authenticated user a request acts on behalf of.
// Populated by the auth middleware from verified token claims.
type Scope struct {
	UserID string
	Email  string
}
