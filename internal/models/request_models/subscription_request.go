package request_models

import "github.com/google/uuid"

type SelectPlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}
