package carts

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestAddToCartRejectsBadBody(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/carts", strings.NewReader("{"))
	h.AddToCart(rec, r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// decodes but names nothing to buy
	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/carts", strings.NewReader(`{"email": "a@b.c", "price": 9.5}`))
	h.AddToCart(rec, r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCartItemInvalidID(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/carts/bogus", nil)

	h.DeleteCartItem(rec, r, httprouter.Params{{Key: "id", Value: "bogus"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
