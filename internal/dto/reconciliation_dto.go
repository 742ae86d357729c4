package dto

import "github.com/djoufack/cashpilot/internal/core/domain"

// ReconcileRequest optionally overrides the configured confidence threshold.
type ReconcileRequest struct {
	Threshold *float64 `json:"threshold" binding:"omitempty,min=0,max=1" minimum:"0" maximum:"1" example:"0.8"`
}

// ReconcileResponse summarises one reconciliation run.
type ReconcileResponse struct {
	Success bool                         `json:"success"`
	Matched int                          `json:"matched"`
	Scanned int                          `json:"scanned"`
	Failed  int                          `json:"failed"`
	Details []domain.ReconciliationMatch `json:"details"`
}

// ToReconcileResponse converts a domain result to its response shape.
func ToReconcileResponse(r *domain.ReconciliationResult) ReconcileResponse {
	details := r.Details
	if details == nil {
		details = []domain.ReconciliationMatch{}
	}
	return ReconcileResponse{
		Success: true,
		Matched: r.Matched,
		Scanned: r.Scanned,
		Failed:  r.Failed,
		Details: details,
	}
}
