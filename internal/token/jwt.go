package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dkulagin/bookmarkd/internal/model"
)

// Claims represents JWT claims carrying the user email alongside the
// registered subject and expiry.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC. The secret is
// injected at construction and never read from ambient state.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// accessTTL is the fixed token lifetime; verification after this window
// must fail.
const accessTTL = 60 * time.Minute

// GenerateAccessToken creates a signed access token for the given identity.
func (j *JWT) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates signature and expiry and extracts the identity.
func (j *JWT) ParseAccessToken(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("access token is invalid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Identity{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	return model.Identity{UserID: userID, Email: claims.Email}, nil
}
