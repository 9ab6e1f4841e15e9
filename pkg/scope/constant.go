package scope

import (
	"errors"
	"time"
)

// TokenExpirationDuration is the lifetime of tokens created by CreateToken.
const TokenExpirationDuration = 2 * time.Hour

var (
	// ErrInvalidToken is returned when a token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
)
