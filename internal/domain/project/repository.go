package project

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// Repository handles project data access.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns projects, optionally filtered to one assigned actor.
// Admins pass an empty assignedTo to see everything.
func (r *Repository) List(ctx context.Context, assignedTo string) ([]Project, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if assignedTo != "" {
		q = q.Where("assigned_to = ?", assignedTo)
	}
	var projects []Project
	err := q.Find(&projects).Error
	return projects, err
}

// AssignedActor returns the sales/PM actor responsible for the project.
func (r *Repository) AssignedActor(ctx context.Context, id string) (string, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return p.AssignedTo, nil
}
