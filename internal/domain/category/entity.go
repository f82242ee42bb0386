package category

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category tags a lead for display purposes only; it never affects
// transitions.
type Category struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Color     string    `gorm:"column:color" json:"color"`
	Icon      string    `gorm:"column:icon" json:"icon"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (cat *Category) BeforeCreate(_ *gorm.DB) error {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return nil
}
