package installment

import (
	"fmt"
	"time"

	"agencydesk/internal/domain/status"
)

// Interval spaces installment due dates.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// PlanShape drives deterministic schedule generation.
type PlanShape struct {
	Installments int      `json:"installments" validate:"omitempty,min=1,max=60"`
	Interval     Interval `json:"interval" validate:"omitempty,oneof=day week month"`
}

// DefaultPlan is used when a conversion draft leaves the plan empty.
var DefaultPlan = PlanShape{Installments: 3, Interval: IntervalMonth}

func (p PlanShape) withDefaults() PlanShape {
	if p.Installments == 0 {
		p.Installments = DefaultPlan.Installments
	}
	if p.Interval == "" {
		p.Interval = DefaultPlan.Interval
	}
	return p
}

func (p PlanShape) dueDate(start time.Time, seq int) time.Time {
	switch p.Interval {
	case IntervalDay:
		return start.AddDate(0, 0, seq)
	case IntervalWeek:
		return start.AddDate(0, 0, 7*seq)
	default:
		return start.AddDate(0, seq, 0)
	}
}

// BuildSchedule splits totalCost into equal installments, remainder on
// the last slice so the amounts always sum to totalCost exactly. Each
// installment must come out positive.
func BuildSchedule(projectID string, totalCost int64, startDate time.Time, plan PlanShape) ([]Installment, error) {
	if totalCost <= 0 {
		return nil, fmt.Errorf("%w: total cost must be positive", ErrValidation)
	}
	plan = plan.withDefaults()
	if plan.Installments < 1 {
		return nil, fmt.Errorf("%w: plan needs at least one installment", ErrValidation)
	}

	n := int64(plan.Installments)
	base := totalCost / n
	remainder := totalCost - base*n
	if base <= 0 {
		return nil, fmt.Errorf("%w: total cost too small for %d installments", ErrValidation, plan.Installments)
	}

	out := make([]Installment, 0, plan.Installments)
	for seq := 1; seq <= plan.Installments; seq++ {
		amount := base
		if seq == plan.Installments {
			amount += remainder
		}
		out = append(out, Installment{
			ProjectID: projectID,
			Seq:       seq,
			Amount:    amount,
			DueDate:   plan.dueDate(startDate, seq),
			Status:    status.InstallmentPending,
		})
	}
	return out, nil
}
