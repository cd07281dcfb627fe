package response_models

import "github.com/google/uuid"

type InitiatePaymentResponse struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	GatewayURL    string    `json:"gateway_url"`
	TransactionID string    `json:"transaction_id"`
	AmountMinor   int64     `json:"amount_minor"`
	Currency      string    `json:"currency"`
	PlanName      string    `json:"plan_name"`
}
