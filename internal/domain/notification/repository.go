package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *Repository) ListByActor(ctx context.Context, actorID string, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var list []Notification
	err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *Repository) CountUnread(ctx context.Context, actorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("actor_id = ? AND is_read = ?", actorID, false).
		Count(&count).Error
	return count, err
}

func (r *Repository) GetByID(ctx context.Context, id, actorID string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND actor_id = ?", id, actorID).
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *Repository) MarkAsRead(ctx context.Context, id, actorID string) error {
	n, err := r.GetByID(ctx, id, actorID)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	n.MarkAsRead()
	return r.db.WithContext(ctx).Model(n).
		Updates(map[string]interface{}{"is_read": true, "read_at": n.ReadAt}).Error
}

func (r *Repository) MarkAllAsRead(ctx context.Context, actorID string) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("actor_id = ? AND is_read = ?", actorID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": gorm.Expr("CURRENT_TIMESTAMP")}).Error
}
