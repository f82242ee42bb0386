package stats

import (
	"context"

	"gorm.io/gorm"

	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/request"
	"agencydesk/internal/domain/status"
)

// Counters is the dashboard snapshot recomputed after every committed
// transition.
type Counters struct {
	Leads               map[status.LeadStatus]int64 `json:"leads"`
	PendingRequests     int64                       `json:"pending_requests"`
	PendingInstallments int64                       `json:"pending_installments"`
	OverdueInstallments int64                       `json:"overdue_installments"`
}

// LeadCounter reports lead totals grouped by status.
type LeadCounter interface {
	CountByStatus(ctx context.Context) (map[status.LeadStatus]int64, error)
}

// Service recomputes counters from committed state and pushes them to
// connected dashboards. It subscribes to the transition bus.
type Service struct {
	db    *gorm.DB
	leads LeadCounter
	hub   *Hub
}

func NewService(db *gorm.DB, leads LeadCounter, hub *Hub) *Service {
	return &Service{db: db, leads: leads, hub: hub}
}

// OnStatusChanged implements event.Sink.
func (s *Service) OnStatusChanged(ctx context.Context, _ event.StatusChanged) error {
	counters, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.hub.Broadcast(&WSEvent{Type: EventCounters, Payload: counters})
	return nil
}

// Snapshot recomputes all counters from the database.
func (s *Service) Snapshot(ctx context.Context) (*Counters, error) {
	leads, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var pendingRequests int64
	if err := s.db.WithContext(ctx).Model(&request.Request{}).
		Where("status = ?", status.RequestPending).
		Count(&pendingRequests).Error; err != nil {
		return nil, err
	}

	var pendingInstallments int64
	if err := s.db.WithContext(ctx).Model(&installment.Installment{}).
		Where("pending_approval = ?", true).
		Count(&pendingInstallments).Error; err != nil {
		return nil, err
	}

	var overdue int64
	if err := s.db.WithContext(ctx).Model(&installment.Installment{}).
		Where("status <> ? AND due_date < CURRENT_TIMESTAMP", status.InstallmentPaid).
		Count(&overdue).Error; err != nil {
		return nil, err
	}

	return &Counters{
		Leads:               leads,
		PendingRequests:     pendingRequests,
		PendingInstallments: pendingInstallments,
		OverdueInstallments: overdue,
	}, nil
}
