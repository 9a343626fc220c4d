package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var rejected bool
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/carts", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		handler(rec, r, nil)
		if rec.Code == http.StatusTooManyRequests {
			rejected = true
			break
		}
	}
	assert.True(t, rejected, "burst should run out within 50 immediate requests")
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// exhaust the first address
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/carts", nil)
		r.RemoteAddr = "10.0.0.2:1234"
		handler(rec, r, nil)
	}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/carts", nil)
	r.RemoteAddr = "10.0.0.3:1234"
	handler(rec, r, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
