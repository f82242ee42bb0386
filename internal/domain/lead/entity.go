package lead

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencydesk/internal/domain/status"
)

// Lead is a prospective customer tracked through the sales pipeline.
// Status only moves along registry edges; ProjectID is set exactly once,
// by conversion, and is present iff the status is converted. Leads are
// never hard-deleted: lost/not_interested are terminal but kept for
// reporting.
type Lead struct {
	ID         string            `gorm:"column:id;primaryKey" json:"id"`
	Phone      string            `gorm:"column:phone;uniqueIndex;not null" json:"phone"`
	Name       string            `gorm:"column:name" json:"name,omitempty"`
	Business   string            `gorm:"column:business" json:"business,omitempty"`
	CategoryID string            `gorm:"column:category_id;not null;index" json:"category_id"`
	OwnerID    string            `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Status     status.LeadStatus `gorm:"column:status;type:varchar(24);not null;default:new;index" json:"status"`

	// Set by conversion only.
	ProjectID   *string    `gorm:"column:project_id;uniqueIndex" json:"project_id,omitempty"`
	ConvertedAt *time.Time `gorm:"column:converted_at" json:"converted_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// IsTerminal reports whether the lead reached a terminal status.
func (l *Lead) IsTerminal() bool {
	return status.IsTerminalLead(l.Status)
}

// IsConverted reports whether the lead was converted to a client.
func (l *Lead) IsConverted() bool {
	return l.Status == status.LeadConverted
}
