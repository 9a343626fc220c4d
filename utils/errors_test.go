package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStatus(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindBadRequest, http.StatusBadRequest},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewError(c.kind, "x").Status())
	}
}

func TestRespondWithAppError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithAppError(rec, NewError(KindForbidden, "Unauthorized request"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized request", body["error"])
}
