package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/store-rating-api/pkg/helpers"
)

func newGatedRouter(t *testing.T, tokens *helpers.TokenManager) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlerRan := false
	r := gin.New()
	r.GET("/gated", Auth(tokens), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"uid": UserID(c), "role": UserRole(c)})
	})
	return r, &handlerRan
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := &helpers.TokenManager{Secret: []byte("k")}
	r, handlerRan := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "message")
}

func TestAuth_NonBearerScheme(t *testing.T) {
	tokens := &helpers.TokenManager{Secret: []byte("k")}
	r, handlerRan := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &helpers.TokenManager{Secret: []byte("k")}
	r, handlerRan := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestAuth_WrongSecret(t *testing.T) {
	signer := &helpers.TokenManager{Secret: []byte("other")}
	tok, err := signer.Generate(9, "admin")
	require.NoError(t, err)

	tokens := &helpers.TokenManager{Secret: []byte("k")}
	r, handlerRan := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestAuth_ValidTokenAttachesIdentity(t *testing.T) {
	tokens := &helpers.TokenManager{Secret: []byte("k")}
	tok, err := tokens.Generate(9, "store_owner")
	require.NoError(t, err)

	r, handlerRan := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.JSONEq(t, `{"uid":9,"role":"store_owner"}`, w.Body.String())
}
