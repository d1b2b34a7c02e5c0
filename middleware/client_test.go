package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	tokens := NewTokenIssuer([]byte("secret"), time.Hour)
	token, clientID, expires, err := tokens.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, clientID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)

	_, other, _, err := tokens.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, clientID, other)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	tokens := NewTokenIssuer([]byte("secret"), time.Hour)

	forged, _, _, err := NewTokenIssuer([]byte("other"), time.Hour).Issue()
	require.NoError(t, err)
	_, err = tokens.Parse(forged)
	assert.Error(t, err)

	expired, _, _, err := NewTokenIssuer([]byte("secret"), -time.Minute).Issue()
	require.NoError(t, err)
	_, err = tokens.Parse(expired)
	assert.Error(t, err)

	noClient, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tokens.Parse(noClient)
	assert.Error(t, err)
}

func TestClientRequired(t *testing.T) {
	tokens := NewTokenIssuer([]byte("secret"), time.Hour)
	r := gin.New()
	r.GET("/whoami", ClientRequired(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, GetClientID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, clientID, _, err := tokens.Issue()
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, clientID, w.Body.String())
}
