package installment

import (
	"time"

	"agencydesk/internal/domain/status"
)

// RequestPaymentRequest is the claim submitted by the assigned actor.
type RequestPaymentRequest struct {
	PaidDate string `json:"paid_date" validate:"required"` // YYYY-MM-DD
	Notes    string `json:"notes"`
}

// RejectPaymentRequest carries the admin's rejection reason.
type RejectPaymentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// View is an installment with its derived status resolved at read time.
type View struct {
	Installment
	EffectiveStatus status.InstallmentStatus `json:"effective_status"`
}

// NewView resolves the derived overdue status against now.
func NewView(inst Installment, now time.Time) View {
	return View{Installment: inst, EffectiveStatus: inst.StatusAt(now)}
}

// NewViews maps a slice of installments to views.
func NewViews(insts []Installment, now time.Time) []View {
	out := make([]View, 0, len(insts))
	for _, inst := range insts {
		out = append(out, NewView(inst, now))
	}
	return out
}
