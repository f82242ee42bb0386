package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/status"
)

// Service applies the submit→respond protocol.
type Service struct {
	db     *gorm.DB
	actors ActorReader
	bus    *event.Bus
}

func NewService(db *gorm.DB, actors ActorReader, bus *event.Bus) *Service {
	return &Service{db: db, actors: actors, bus: bus}
}

// Create stores a request from sender to recipient. The two must be
// distinct actors; same-role pairs are allowed.
func (s *Service) Create(ctx context.Context, req CreateRequest, senderID string) (*Request, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if req.Recipient == senderID {
		return nil, ErrSelfRequest
	}

	sender, err := s.actors.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.actors.GetByID(ctx, req.Recipient)
	if err != nil {
		if errors.Is(err, actor.ErrActorNotFound) {
			return nil, fmt.Errorf("%w: unknown recipient %q", ErrValidation, req.Recipient)
		}
		return nil, err
	}

	st := status.RequestPending
	if req.SaveAsDraft {
		st = status.RequestDraft
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	r := &Request{
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Priority:        priority,
		RequestedBy:     sender.ID,
		RequestedByRole: string(sender.Role),
		RequestedByName: sender.Name,
		Recipient:       recipient.ID,
		RecipientRole:   string(recipient.Role),
		RecipientName:   recipient.Name,
		Status:          st,
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}

	if st == status.RequestPending {
		s.publish(r.ID, "", status.RequestPending)
	}
	return r, nil
}

// Send promotes a draft to pending. Only the sender may send.
func (s *Service) Send(ctx context.Context, id, senderID string) (*Request, error) {
	var r Request
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRequest(tx, id, &r); err != nil {
			return err
		}
		if r.RequestedBy != senderID {
			return ErrNotSender
		}
		if !status.IsLegalRequestTransition(r.Status, status.RequestPending) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, r.Status, status.RequestPending)
		}

		r.Status = status.RequestPending
		return tx.Model(&Request{}).Where("id = ?", r.ID).Update("status", status.RequestPending).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(r.ID, string(status.RequestDraft), status.RequestPending)
	return &r, nil
}

// Respond sets the at-most-once response. A second call is rejected, it
// never overwrites; non-approve verdicts require a message.
func (s *Service) Respond(ctx context.Context, id, responderID string, rt ResponseType, message string) (*Request, error) {
	if !rt.Valid() {
		return nil, fmt.Errorf("%w: unknown response type %q", ErrValidation, rt)
	}
	if rt != ResponseApprove && strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: %s requires a message", ErrValidation, rt)
	}

	var r Request
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRequest(tx, id, &r); err != nil {
			return err
		}
		if r.Recipient != responderID {
			return ErrNotRecipient
		}
		if r.IsResponded() {
			return ErrAlreadyResponded
		}
		if r.Status != status.RequestPending {
			return fmt.Errorf("%w: cannot respond to a %s request", ErrIllegalTransition, r.Status)
		}

		now := time.Now().UTC()
		r.Status = status.RequestResponded
		r.ResponseType = &rt
		r.ResponseMessage = message
		r.RespondedBy = responderID
		r.RespondedAt = &now
		return tx.Model(&Request{}).Where("id = ?", r.ID).Updates(map[string]any{
			"status":           status.RequestResponded,
			"response_type":    rt,
			"response_message": message,
			"responded_by":     responderID,
			"responded_at":     now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(r.ID, string(status.RequestPending), status.RequestResponded)
	return &r, nil
}

// GetByID returns a single request visible to sender or recipient.
func (s *Service) GetByID(ctx context.Context, id string) (*Request, error) {
	var r Request
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListIncoming returns requests addressed to the actor. Drafts are the
// sender's business and never show up in inboxes.
func (s *Service) ListIncoming(ctx context.Context, actorID string, filter ListFilter) ([]Request, error) {
	q := s.db.WithContext(ctx).
		Where("recipient = ?", actorID).
		Where("status <> ?", status.RequestDraft)
	return listRequests(q, filter)
}

// ListOutgoing returns requests created by the actor, drafts included.
func (s *Service) ListOutgoing(ctx context.Context, actorID string, filter ListFilter) ([]Request, error) {
	q := s.db.WithContext(ctx).Where("requested_by = ?", actorID)
	return listRequests(q, filter)
}

func listRequests(q *gorm.DB, filter ListFilter) ([]Request, error) {
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requested_by_name) LIKE ? OR LOWER(recipient_name) LIKE ?",
			needle, needle, needle, needle,
		)
	}

	var out []Request
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *Service) publish(requestID string, from string, to status.RequestStatus) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event.StatusChanged{
		Kind:     status.KindRequest,
		EntityID: requestID,
		From:     from,
		To:       string(to),
	})
}

func lockRequest(tx *gorm.DB, id string, r *Request) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRequestNotFound
	}
	return err
}
