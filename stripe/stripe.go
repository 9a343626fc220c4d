package stripe

import (
	"math"

	sdk "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

// Intent is the slice of the provider's payment intent the API exposes.
type Intent struct {
	ID           string
	ClientSecret string
}

// Adapter wraps the provider's payment-intent API.
type Adapter struct{}

// New configures the provider SDK with the secret key from the
// environment.
func New(secretKey string) *Adapter {
	sdk.Key = secretKey
	return &Adapter{}
}

// AmountInCents converts a price to the smallest currency unit,
// truncating toward zero.
func AmountInCents(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

// CreateIntent requests an authorized-but-unsettled charge for the
// given amount in cents.
func (a *Adapter) CreateIntent(amount int64) (*Intent, error) {
	params := &sdk.PaymentIntentParams{
		Amount:             sdk.Int64(amount),
		Currency:           sdk.String(string(sdk.CurrencyUSD)),
		PaymentMethodTypes: sdk.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
