package actor

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role segments the dashboard users.
type Role string

const (
	RoleSales    Role = "sales"
	RolePM       Role = "pm"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSales, RolePM, RoleEmployee, RoleClient, RoleAdmin:
		return true
	}
	return false
}

// Actor is a dashboard user who triggers workflow transitions.
type Actor struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Role         Role      `gorm:"column:role;type:varchar(16);not null;index" json:"role"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Actor) TableName() string {
	return "actors"
}

func (a *Actor) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
