package category

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// Repository handles category data access.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	var cats []Category
	err := r.db.WithContext(ctx).Order("name").Find(&cats).Error
	return cats, err
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Category, error) {
	var cat Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// Exists reports whether a category id references a stored category.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(ctx context.Context, cat *Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}
