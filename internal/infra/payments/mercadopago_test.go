package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
)

type fakeCreator struct {
	got preference.Request
	res *preference.Response
	err error
}

func (f *fakeCreator) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.res, f.err
}

func TestMercadoPago_CreateLink(t *testing.T) {
	fake := &fakeCreator{res: &preference.Response{ID: "pref-1", InitPoint: "https://mp.example/checkout"}}
	mp := &MercadoPago{client: fake, notificationURL: "https://api.clinic.example/hooks/mp"}

	link, err := mp.CreateLink(context.Background(), domain.PaymentRequest{
		Reference: "visit-7",
		Title:     "Dental visit #7",
		Amount:    250.5,
		Currency:  "BRL",
	})
	require.NoError(t, err)

	assert.Equal(t, "pref-1", link.PreferenceID)
	assert.Equal(t, "https://mp.example/checkout", link.InitPoint)
	assert.Equal(t, 250.5, link.Amount)

	require.Len(t, fake.got.Items, 1)
	assert.Equal(t, 1, fake.got.Items[0].Quantity)
	assert.Equal(t, 250.5, fake.got.Items[0].UnitPrice)
	assert.Equal(t, "BRL", fake.got.Items[0].CurrencyID)
	assert.Equal(t, "visit-7", fake.got.ExternalReference)
	assert.Equal(t, "https://api.clinic.example/hooks/mp", fake.got.NotificationURL)
}

func TestMercadoPago_CreateLinkError(t *testing.T) {
	mp := &MercadoPago{client: &fakeCreator{err: errors.New("401")}}

	_, err := mp.CreateLink(context.Background(), domain.PaymentRequest{Amount: 10})
	assert.Error(t, err)
}

func TestNewMercadoPago_RequiresToken(t *testing.T) {
	_, err := NewMercadoPago("", "")
	assert.Error(t, err)
}
