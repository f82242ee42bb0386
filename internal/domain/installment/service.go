package installment

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/status"
)

// Service applies the two-phase propose-paid → admin-approve protocol.
// A claim never flips status to paid by itself; only Approve does.
type Service struct {
	db       *gorm.DB
	projects ProjectReader
	earnings EarningsCrediter
	bus      *event.Bus
}

func NewService(db *gorm.DB, projects ProjectReader, earnings EarningsCrediter, bus *event.Bus) *Service {
	return &Service{db: db, projects: projects, earnings: earnings, bus: bus}
}

// GetByID returns a single installment.
func (s *Service) GetByID(ctx context.Context, id string) (*Installment, error) {
	var inst Installment
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&inst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, err
	}
	return &inst, nil
}

// ListByProject returns the project's schedule in sequence order.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Installment, error) {
	var insts []Installment
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("seq").
		Find(&insts).Error
	return insts, err
}

// ListPendingApproval returns open claims for the admin review queue.
func (s *Service) ListPendingApproval(ctx context.Context) ([]Installment, error) {
	var insts []Installment
	err := s.db.WithContext(ctx).
		Where("pending_approval = ?", true).
		Order("updated_at").
		Find(&insts).Error
	return insts, err
}

// RequestPayment records a paid claim for admin sign-off. Only the actor
// assigned to the owning project may claim, an existing claim blocks a
// second one, and a paid installment cannot be claimed again.
func (s *Service) RequestPayment(ctx context.Context, id, actorID string, paidDate time.Time, notes string) (*Installment, error) {
	var inst Installment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInstallment(tx, id, &inst); err != nil {
			return err
		}

		actor, err := s.projects.AssignedActor(ctx, inst.ProjectID)
		if err != nil {
			return err
		}
		if actor != actorID {
			return ErrNotAssigned
		}

		if inst.IsPaid() {
			return ErrAlreadyPaid
		}
		if inst.PendingApproval {
			return ErrAlreadyPending
		}

		inst.PendingApproval = true
		inst.ProposedPaidDate = &paidDate
		inst.ProposedNotes = notes
		inst.ProposedBy = actorID
		return tx.Model(&Installment{}).Where("id = ?", inst.ID).Updates(map[string]any{
			"pending_approval":   true,
			"proposed_paid_date": paidDate,
			"proposed_notes":     notes,
			"proposed_by":        actorID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// Approve makes a pending claim authoritative: status becomes paid, the
// proposed paid date and notes are promoted, and the assigned actor's
// earnings are credited.
func (s *Service) Approve(ctx context.Context, id, adminID string) (*Installment, error) {
	var inst Installment
	from := status.InstallmentPending

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInstallment(tx, id, &inst); err != nil {
			return err
		}
		if !inst.PendingApproval {
			return ErrNoPendingClaim
		}

		from = inst.Status
		paidDate := time.Now().UTC()
		if inst.ProposedPaidDate != nil {
			paidDate = *inst.ProposedPaidDate
		}

		inst.Status = status.InstallmentPaid
		inst.PendingApproval = false
		inst.PaidDate = &paidDate
		inst.Notes = inst.ProposedNotes
		return tx.Model(&Installment{}).Where("id = ?", inst.ID).Updates(map[string]any{
			"status":           status.InstallmentPaid,
			"pending_approval": false,
			"paid_date":        paidDate,
			"notes":            inst.ProposedNotes,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.earnings != nil {
		actor, aerr := s.projects.AssignedActor(ctx, inst.ProjectID)
		if aerr == nil && actor != "" {
			if cerr := s.earnings.Credit(ctx, actor, inst.Amount, inst.ID); cerr != nil {
				log.Printf("earnings_credit_failed installment_id=%s actor_id=%s err=%v", inst.ID, actor, cerr)
			}
		}
	}

	if s.bus != nil {
		s.bus.Publish(event.StatusChanged{
			Kind:     status.KindInstallment,
			EntityID: inst.ID,
			From:     string(from),
			To:       string(status.InstallmentPaid),
		})
	}

	return &inst, nil
}

// Reject discards a pending claim. Status is untouched; the claim must
// be resubmitted.
func (s *Service) Reject(ctx context.Context, id, adminID, reason string) (*Installment, error) {
	var inst Installment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInstallment(tx, id, &inst); err != nil {
			return err
		}
		if !inst.PendingApproval {
			return ErrNoPendingClaim
		}

		inst.PendingApproval = false
		inst.ProposedPaidDate = nil
		inst.ProposedNotes = ""
		inst.ProposedBy = ""
		inst.LastRejectReason = reason
		return tx.Model(&Installment{}).Where("id = ?", inst.ID).Updates(map[string]any{
			"pending_approval":   false,
			"proposed_paid_date": nil,
			"proposed_notes":     "",
			"proposed_by":        "",
			"last_reject_reason": reason,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func lockInstallment(tx *gorm.DB, id string, inst *Installment) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInstallmentNotFound
	}
	return err
}
