package lead

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/project"
	"agencydesk/internal/domain/status"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// Service owns lead lifecycle transitions. All mutations run under a
// row lock on the lead so concurrent attempts serialize; the loser
// observes the committed state and gets a conflict or terminal error.
type Service struct {
	db         *gorm.DB
	categories CategoryChecker
	bus        *event.Bus
}

func NewService(db *gorm.DB, categories CategoryChecker, bus *event.Bus) *Service {
	return &Service{db: db, categories: categories, bus: bus}
}

// CreateLead validates the contact and category and stores a new lead
// owned by the caller.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest, ownerID string) (*Lead, error) {
	if !phoneRe.MatchString(req.Phone) {
		return nil, fmt.Errorf("%w: phone must be exactly 10 digits", ErrValidation)
	}

	ok, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.CategoryID)
	}

	l := &Lead{
		Phone:      req.Phone,
		Name:       req.Name,
		Business:   req.Business,
		CategoryID: req.CategoryID,
		OwnerID:    ownerID,
		Status:     status.LeadNew,
	}
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		return nil, err
	}

	s.publish(l.ID, "", status.LeadNew)
	return l, nil
}

// GetByID returns a lead, guarding the converted⇔project invariant.
func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	if l.IsConverted() != (l.ProjectID != nil) {
		return nil, fmt.Errorf("%w: lead %s converted=%t project_ref=%t",
			ErrIntegrity, l.ID, l.IsConverted(), l.ProjectID != nil)
	}
	return &l, nil
}

// Transition applies a registry edge. Only the owner (or an admin) may
// transition; conversion must go through ConvertToClient so the project
// spawn stays atomic.
func (s *Service) Transition(ctx context.Context, leadID, actorID string, isAdmin bool, target status.LeadStatus) (*Lead, error) {
	if !status.IsLeadStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, target)
	}
	if target == status.LeadConverted {
		return nil, fmt.Errorf("%w: conversion requires a project draft", ErrValidation)
	}

	var l Lead
	var from status.LeadStatus

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockLead(tx, leadID, &l); err != nil {
			return err
		}
		if l.OwnerID != actorID && !isAdmin {
			return ErrNotOwner
		}
		if l.Status == target {
			// Lost a race against an identical transition.
			return ErrConflict
		}
		if l.IsTerminal() {
			return ErrTerminalState
		}
		if !status.IsLegalLeadTransition(l.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, l.Status, target)
		}

		from = l.Status
		l.Status = target
		return tx.Model(&Lead{}).Where("id = ?", l.ID).Update("status", target).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(l.ID, string(from), target)
	return &l, nil
}

// ConvertToClient atomically marks the lead converted, spawns exactly one
// project and its installment schedule. Either everything commits or
// nothing does; a converted lead without a project is never observable.
func (s *Service) ConvertToClient(ctx context.Context, leadID, actorID string, isAdmin bool, draft ProjectDraft) (*Lead, *project.Project, error) {
	startDate, err := parseDraft(draft)
	if err != nil {
		return nil, nil, err
	}

	var l Lead
	var p project.Project
	var from status.LeadStatus

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockLead(tx, leadID, &l); err != nil {
			return err
		}
		if l.OwnerID != actorID && !isAdmin {
			return ErrNotOwner
		}
		if l.IsConverted() {
			return ErrConflict
		}
		if l.IsTerminal() {
			return ErrTerminalState
		}

		from = l.Status
		p = project.Project{
			LeadID:          l.ID,
			Name:            draft.ProjectName,
			Type:            draft.ProjectType,
			EstimatedBudget: draft.EstimatedBudget,
			StartDate:       startDate,
			AssignedTo:      l.OwnerID,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		schedule, err := installment.BuildSchedule(p.ID, draft.EstimatedBudget, startDate, draft.Plan)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		l.Status = status.LeadConverted
		l.ProjectID = &p.ID
		l.ConvertedAt = &now
		return tx.Model(&Lead{}).Where("id = ?", l.ID).Updates(map[string]any{
			"status":       status.LeadConverted,
			"project_id":   p.ID,
			"converted_at": now,
		}).Error
	})
	if err != nil {
		return nil, nil, err
	}

	s.publish(l.ID, string(from), status.LeadConverted)
	return &l, &p, nil
}

// Assign moves ownership to another sales actor. Admin operation; the
// lead keeps its status.
func (s *Service) Assign(ctx context.Context, leadID, newOwnerID string) (*Lead, error) {
	var l Lead
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockLead(tx, leadID, &l); err != nil {
			return err
		}
		if l.IsTerminal() {
			return ErrTerminalState
		}
		l.OwnerID = newOwnerID
		return tx.Model(&Lead{}).Where("id = ?", l.ID).Update("owner_id", newOwnerID).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns leads matching the filter, newest first. Non-admin
// callers are scoped to their own leads by the handler.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]Lead, int64, error) {
	q := s.db.WithContext(ctx).Model(&Lead{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(business) LIKE ? OR phone LIKE ?", needle, needle, needle)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []Lead
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// CountByStatus returns pipeline counters for the dashboards.
func (s *Service) CountByStatus(ctx context.Context) (map[status.LeadStatus]int64, error) {
	rows, err := s.db.WithContext(ctx).Model(&Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[status.LeadStatus]int64)
	for rows.Next() {
		var st status.LeadStatus
		var count int64
		if err := rows.Scan(&st, &count); err != nil {
			return nil, err
		}
		counts[st] = count
	}
	return counts, rows.Err()
}

func (s *Service) publish(leadID, from string, to status.LeadStatus) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event.StatusChanged{
		Kind:     status.KindLead,
		EntityID: leadID,
		From:     from,
		To:       string(to),
	})
}

func parseDraft(draft ProjectDraft) (time.Time, error) {
	if draft.ProjectName == "" || draft.ProjectType == "" {
		return time.Time{}, fmt.Errorf("%w: project name and type are required", ErrValidation)
	}
	if draft.EstimatedBudget <= 0 {
		return time.Time{}, fmt.Errorf("%w: estimated budget must be positive", ErrValidation)
	}
	startDate, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrValidation)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return time.Time{}, fmt.Errorf("%w: start_date must not be in the past", ErrValidation)
	}
	return startDate, nil
}

func lockLead(tx *gorm.DB, id string, l *Lead) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLeadNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite fallback for local runs and tests
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
