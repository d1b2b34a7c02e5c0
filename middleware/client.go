package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const clientIDKey = "clientID"

var errInvalidToken = errors.New("invalid client token")

// Claims name the storage namespace a browser writes its cart and session to
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies client tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a signed token for a brand-new client namespace
func (t *TokenIssuer) Issue() (token, clientID string, expiresAt time.Time, err error) {
	now := time.Now()
	clientID = uuid.NewString()
	expiresAt = now.Add(t.ttl)
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	return token, clientID, expiresAt, err
}

// Parse verifies a token and returns its claims
func (t *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ClientID == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// ClientRequired validates the client token and injects the client ID into context
func ClientRequired(tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <client token>)"})
			c.Abort()
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired client token"})
			c.Abort()
			return
		}
		c.Set(clientIDKey, claims.ClientID)
		c.Next()
	}
}

// GetClientID extracts the caller's client ID from context
func GetClientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
