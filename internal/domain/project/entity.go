package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is spawned exactly once when a lead converts. It owns the
// installment schedule; installments never outlive their project.
type Project struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	LeadID          string    `gorm:"column:lead_id;uniqueIndex;not null" json:"lead_id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	Type            string    `gorm:"column:type;not null" json:"type"`
	EstimatedBudget int64     `gorm:"column:estimated_budget;not null" json:"estimated_budget"`
	StartDate       time.Time `gorm:"column:start_date;not null" json:"start_date"`
	AssignedTo      string    `gorm:"column:assigned_to;not null;index" json:"assigned_to"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
