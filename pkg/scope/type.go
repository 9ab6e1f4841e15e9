package scope

import "github.com/golang-jwt/jwt"

// Payload represents the JWT token claims. The user ID travels in the
// standard "sub" claim.
type Payload struct {
	jwt.StandardClaims
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
