package visit

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
)

type CreatePaymentLink struct {
	repo     domain.Repository
	gateway  domain.PaymentGateway
	currency string
}

// NewCreatePaymentLink accepts a nil gateway; requests then fail with
// payments_unavailable.
func NewCreatePaymentLink(
	repo domain.Repository,
	gateway domain.PaymentGateway,
	currency string,
) *CreatePaymentLink {
	if currency == "" {
		currency = "BRL"
	}
	return &CreatePaymentLink{repo: repo, gateway: gateway, currency: currency}
}

// Execute charges the visit's outstanding amount.
func (uc *CreatePaymentLink) Execute(ctx context.Context, visitID uint) (*domain.PaymentLink, error) {
	if uc.gateway == nil {
		return nil, httperr.ErrBusiness("payments_unavailable")
	}

	v, err := uc.repo.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if v.DueAmount <= 0 {
		return nil, httperr.ErrBusiness("nothing_due")
	}

	return uc.gateway.CreateLink(ctx, domain.PaymentRequest{
		Reference:   fmt.Sprintf("visit-%d", v.ID),
		Title:       fmt.Sprintf("Dental treatment - visit #%d", v.ID),
		Description: v.TreatmentPlan,
		Amount:      v.DueAmount,
		Currency:    uc.currency,
	})
}
