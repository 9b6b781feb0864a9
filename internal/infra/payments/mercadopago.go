package payments

import (
	"context"
	"errors"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPago creates Checkout Pro preferences.
type MercadoPago struct {
	client          preferenceCreator
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, errors.New("mercadopago access token is empty")
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{
		client:          preference.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateLink(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentLink, error) {
	res, err := m.client.Create(ctx, buildRequest(req, m.notificationURL))
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &domain.PaymentLink{
		PreferenceID: res.ID,
		InitPoint:    res.InitPoint,
		Amount:       req.Amount,
	}, nil
}

func buildRequest(req domain.PaymentRequest, notificationURL string) preference.Request {
	return preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       req.Title,
				Description: req.Description,
				Quantity:    1,
				UnitPrice:   req.Amount,
				CurrencyID:  req.Currency,
			},
		},
		ExternalReference: req.Reference,
		NotificationURL:   notificationURL,
	}
}

// Compile-time check
var _ domain.PaymentGateway = (*MercadoPago)(nil)
