package ports

// Identity is the request-scoped principal carried by a verified token.
type Identity struct {
	UserID int64
	Role   string
}

// TokenVerifier is the read side of the token service, consumed by the
// auth middleware.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	TokenVerifier
	Issue(userID int64, role string) (string, error)
}
