package notification

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/lead"
	"agencydesk/internal/domain/project"
	"agencydesk/internal/domain/request"
	"agencydesk/internal/domain/status"
)

// Service writes inbox entries for the actors affected by a committed
// transition. It subscribes to the transition bus.
type Service struct {
	db   *gorm.DB
	repo *Repository
}

func NewService(db *gorm.DB, repo *Repository) *Service {
	return &Service{db: db, repo: repo}
}

func (s *Service) notify(ctx context.Context, actorID string, t Type, title, body string) error {
	if actorID == "" {
		return nil
	}
	return s.repo.Create(ctx, &Notification{
		ActorID: actorID,
		Type:    t,
		Title:   title,
		Body:    body,
	})
}

// OnStatusChanged implements event.Sink.
func (s *Service) OnStatusChanged(ctx context.Context, ev event.StatusChanged) error {
	switch ev.Kind {
	case status.KindLead:
		return s.onLeadChanged(ctx, ev)
	case status.KindRequest:
		return s.onRequestChanged(ctx, ev)
	case status.KindInstallment:
		return s.onInstallmentChanged(ctx, ev)
	}
	return nil
}

func (s *Service) onLeadChanged(ctx context.Context, ev event.StatusChanged) error {
	var l lead.Lead
	if err := s.db.WithContext(ctx).First(&l, "id = ?", ev.EntityID).Error; err != nil {
		return err
	}

	switch status.LeadStatus(ev.To) {
	case status.LeadConverted:
		return s.notify(ctx, l.OwnerID, TypeLeadConverted,
			"Lead converted",
			fmt.Sprintf("Lead %s is now a client", l.Phone))
	case status.LeadLost, status.LeadNotInterested:
		return s.notify(ctx, l.OwnerID, TypeLeadUpdated,
			"Lead closed",
			fmt.Sprintf("Lead %s was closed as %s", l.Phone, ev.To))
	default:
		// New leads and routine pipeline moves stay off the inbox.
		if ev.From == "" {
			return nil
		}
		return s.notify(ctx, l.OwnerID, TypeLeadUpdated,
			"Lead updated",
			fmt.Sprintf("Lead %s moved from %s to %s", l.Phone, ev.From, ev.To))
	}
}

func (s *Service) onRequestChanged(ctx context.Context, ev event.StatusChanged) error {
	var r request.Request
	if err := s.db.WithContext(ctx).First(&r, "id = ?", ev.EntityID).Error; err != nil {
		return err
	}

	switch status.RequestStatus(ev.To) {
	case status.RequestPending:
		return s.notify(ctx, r.Recipient, TypeRequestReceived,
			"New request",
			fmt.Sprintf("%s sent you a %s request: %s", r.RequestedByName, r.Type, r.Title))
	case status.RequestResponded:
		body := fmt.Sprintf("%s responded to %q", r.RecipientName, r.Title)
		if r.ResponseType != nil {
			body = fmt.Sprintf("%s responded to %q: %s", r.RecipientName, r.Title, *r.ResponseType)
		}
		return s.notify(ctx, r.RequestedBy, TypeRequestResponded, "Request responded", body)
	}
	return nil
}

func (s *Service) onInstallmentChanged(ctx context.Context, ev event.StatusChanged) error {
	if status.InstallmentStatus(ev.To) != status.InstallmentPaid {
		return nil
	}

	var inst installment.Installment
	if err := s.db.WithContext(ctx).First(&inst, "id = ?", ev.EntityID).Error; err != nil {
		return err
	}
	var p project.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", inst.ProjectID).Error; err != nil {
		return err
	}

	return s.notify(ctx, p.AssignedTo, TypePaymentApproved,
		"Payment approved",
		fmt.Sprintf("Installment #%d on %s was approved as paid", inst.Seq, p.Name))
}
