package scope

// Manager verifies and creates authentication tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a new JWT-backed Manager with the given secret key.
func New(secretKey string) Manager {
	return &implManager{secretKey: secretKey}
}
