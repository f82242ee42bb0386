package installment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencydesk/internal/domain/status"
)

// Installment is one payment slice of a project's total cost. Only
// pending and paid are ever stored; overdue is derived from the due
// date at read time.
type Installment struct {
	ID        string                   `gorm:"column:id;primaryKey" json:"id"`
	ProjectID string                   `gorm:"column:project_id;not null;index" json:"project_id"`
	Seq       int                      `gorm:"column:seq;not null" json:"seq"`
	Amount    int64                    `gorm:"column:amount;not null" json:"amount"`
	DueDate   time.Time                `gorm:"column:due_date;not null" json:"due_date"`
	Status    status.InstallmentStatus `gorm:"column:status;type:varchar(16);not null;default:pending" json:"status"`

	// Claim proposed by the assigned actor, authoritative only after
	// admin approval.
	PendingApproval  bool       `gorm:"column:pending_approval;not null;default:false" json:"pending_approval"`
	ProposedPaidDate *time.Time `gorm:"column:proposed_paid_date" json:"proposed_paid_date,omitempty"`
	ProposedNotes    string     `gorm:"column:proposed_notes" json:"proposed_notes,omitempty"`
	ProposedBy       string     `gorm:"column:proposed_by" json:"proposed_by,omitempty"`

	PaidDate         *time.Time `gorm:"column:paid_date" json:"paid_date,omitempty"`
	Notes            string     `gorm:"column:notes" json:"notes,omitempty"`
	LastRejectReason string     `gorm:"column:last_reject_reason" json:"last_reject_reason,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string {
	return "installments"
}

func (i *Installment) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// IsPaid reports whether the installment has been approved as paid.
func (i *Installment) IsPaid() bool {
	return i.Status == status.InstallmentPaid
}

// StatusAt derives the effective status at the given time.
func (i *Installment) StatusAt(now time.Time) status.InstallmentStatus {
	if i.Status == status.InstallmentPending && i.DueDate.Before(now) {
		return status.InstallmentOverdue
	}
	return i.Status
}
