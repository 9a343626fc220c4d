package pay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartObjectIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids := CartObjectIDs([]string{a.Hex(), "not-hex", b.Hex(), ""})

	require.Len(t, ids, 2)
	assert.Equal(t, a, ids[0])
	assert.Equal(t, b, ids[1])
}

func TestCreatePaymentIntentRejectsBadBody(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader("{"))
	h.CreatePaymentIntent(rec, r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"price": 0}`))
	h.CreatePaymentIntent(rec, r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"price": -4}`))
	h.CreatePaymentIntent(rec, r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordPaymentRequiresEmail(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/payments", strings.NewReader(`{"price": 12, "cartIds": []}`))

	h.RecordPayment(rec, r, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPaymentsForbidsOtherEmails(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	// no token on the request, so the caller email is empty
	r := httptest.NewRequest("GET", "/payments/guest@hotel.io", nil)

	h.GetPayments(rec, r, httprouter.Params{{Key: "email", Value: "guest@hotel.io"}})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
