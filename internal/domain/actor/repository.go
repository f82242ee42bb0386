package actor

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles actor data access.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Actor, error) {
	var a Actor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Actor, error) {
	var a Actor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *Actor) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListByRole returns active actors with the given role, used by the
// request form's recipient picker.
func (r *Repository) ListByRole(ctx context.Context, role Role) ([]Actor, error) {
	var actors []Actor
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("name").
		Find(&actors).Error
	return actors, err
}
