package visit

import "context"

type PaymentRequest struct {
	Reference   string
	Title       string
	Description string
	Amount      float64
	Currency    string
}

type PaymentLink struct {
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	Amount       float64 `json:"amount"`
}

// PaymentGateway creates hosted checkout links.
type PaymentGateway interface {
	CreateLink(ctx context.Context, req PaymentRequest) (*PaymentLink, error)
}
