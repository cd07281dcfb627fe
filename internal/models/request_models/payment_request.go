package request_models

import "github.com/google/uuid"

type InitiatePaymentRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}

// GatewayCallback is the form posted by the gateway to the success/fail/
// cancel/IPN endpoints. Only the fields the orchestrator reads are bound;
// the full body is persisted raw on the Payment record.
type GatewayCallback struct {
	TranID     string `form:"tran_id" json:"tran_id"`
	ValID      string `form:"val_id" json:"val_id"`
	Status     string `form:"status" json:"status"`
	Amount     string `form:"amount" json:"amount,omitempty"`
	Currency   string `form:"currency" json:"currency,omitempty"`
	BankTranID string `form:"bank_tran_id" json:"bank_tran_id,omitempty"`
	CardType   string `form:"card_type" json:"card_type,omitempty"`
}
