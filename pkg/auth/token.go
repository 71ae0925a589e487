package auth

import (
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims issued by the identity provider.
// The subject is the account holder's user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a user id
func (c *Claims) UserID() kernel.UserID {
	return kernel.UserID(c.Subject)
}

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// JWTService verifies HS256 access tokens signed with the provider's secret
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTService creates a verifier. Empty issuer or audience disables that check.
func NewJWTService(secret, issuer, audience string) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Verify parses and validates a token
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken()
	}

	return claims, nil
}

// Issue signs a token for userID. The provider issues production tokens;
// this is used by local tooling and tests.
func (s *JWTService) Issue(userID kernel.UserID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
