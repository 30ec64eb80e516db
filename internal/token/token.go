package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued credential stays valid.
const TokenTTL = time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Service signs and verifies bearer credentials. Tokens are stateless:
// nothing is persisted and validity is decided purely by signature and
// expiry at verification time.
type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	return &Service{secret: []byte(secret), now: time.Now}, nil
}

// Issue embeds the caller-supplied identity payload verbatim as claims and
// stamps an expiry of TokenTTL from now. The payload shape is not
// validated; callers must not put secrets in it.
func (s *Service) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(s.now().Add(TokenTTL))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (s *Service) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Email extracts the email claim, the sole key correlating a verified
// credential with a stored user record.
func Email(claims jwt.MapClaims) (string, bool) {
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
