package services

import (
	"context"
	"math"

	"doctorsportal/payments"
)

// Currency is fixed; the booking client always charges in USD.
const Currency = "usd"

type PaymentService struct {
	gateway payments.IntentCreator
}

func NewPaymentService(gateway payments.IntentCreator) *PaymentService {
	return &PaymentService{gateway: gateway}
}

// CreateIntent converts the price to the smallest currency unit and asks the
// gateway for an intent, returning only the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	return s.gateway.CreateIntent(ctx, amount, Currency)
}
