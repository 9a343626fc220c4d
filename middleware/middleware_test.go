package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestMintTokenRoundTrip(t *testing.T) {
	a := NewAuth(testSecret, nil)

	token, err := a.MintToken(map[string]interface{}{"email": "guest@hotel.io"})
	require.NoError(t, err)

	claims, err := a.ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "guest@hotel.io", claims.Email)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	a := NewAuth(testSecret, nil)
	called := false
	handler := a.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/users", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateBadToken(t *testing.T) {
	a := NewAuth(testSecret, nil)
	handler := a.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	for _, header := range []string{"garbage", "Bearer nope.nope.nope"} {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/users", nil)
		r.Header.Set("Authorization", header)
		handler(rec, r, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "guest@hotel.io",
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	a := NewAuth(testSecret, nil)
	handler := a.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler(rec, r, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePutsEmailOnContext(t *testing.T) {
	a := NewAuth(testSecret, nil)
	token, err := a.MintToken(map[string]interface{}{"email": "guest@hotel.io"})
	require.NoError(t, err)

	var got string
	handler := a.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		got = utils.GetEmailFromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler(rec, r, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest@hotel.io", got)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	other := NewAuth([]byte("other-secret"), nil)
	token, err := other.MintToken(map[string]interface{}{"email": "guest@hotel.io"})
	require.NoError(t, err)

	a := NewAuth(testSecret, nil)
	_, err = a.ValidateJWT("Bearer " + token)
	assert.Error(t, err)
}
