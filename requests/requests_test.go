package requests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestRejectsMissingFields(t *testing.T) {
	h := &Handler{}

	bodies := []string{
		`{}`,
		`{"mealName": "Ramen", "image": "ramen.png", "time": "2026-08-28"}`,
		`{"email": "a@b.c", "image": "ramen.png", "time": "2026-08-28"}`,
		`{"email": "a@b.c", "mealName": "Ramen", "time": "2026-08-28"}`,
		`{"email": "a@b.c", "mealName": "Ramen", "image": "ramen.png"}`,
		`{"email": "", "mealName": "Ramen", "image": "ramen.png", "time": "2026-08-28"}`,
	}
	for i, body := range bodies {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
		h.CreateRequest(rec, r, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("body %d", i))
	}
}

func TestCreateRequestRejectsBadJSON(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/requests", strings.NewReader("{"))

	h.CreateRequest(rec, r, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
