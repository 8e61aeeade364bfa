package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingToken is returned when no bearer credential is present.
var ErrMissingToken = errors.New("authorization token is missing")

// ErrInvalidToken is returned for malformed tokens, bad signatures, and
// tokens whose claims cannot be read.
var ErrInvalidToken = errors.New("token is invalid")

// ErrWrongTokenType is returned when the credential is not an access token
// (e.g. a refresh token).
var ErrWrongTokenType = errors.New("wrong token type")

// ErrExpiredToken is returned when the exp claim is missing or in the past.
var ErrExpiredToken = errors.New("token has expired")

// Claims is the claim set this service needs from a verified access token.
type Claims struct {
	UserID int64
}

// Validator verifies bearer credentials against a shared signing secret.
// It is stateless: no network calls, no caching.
type Validator struct {
	secret []byte
}

// NewValidator creates a new Validator.
func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// ValidateHeader extracts the bearer token from a raw Authorization header
// value and validates it.
func (v *Validator) ValidateHeader(header string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return nil, ErrMissingToken
	}
	return v.Validate(token)
}

// Validate checks the token's signature, type, and expiry and returns the
// decoded claims.
func (v *Validator) Validate(token string) (*Claims, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenRequiredClaimMissing) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return nil, ErrWrongTokenType
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int64(userID)}, nil
}
