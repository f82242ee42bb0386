package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type represents notification type
type Type string

const (
	TypeLeadUpdated      Type = "lead_updated"      // Owner: lead moved to a new status
	TypeLeadConverted    Type = "lead_converted"    // Owner: lead converted to client
	TypeRequestReceived  Type = "request_received"  // Recipient: new request awaiting response
	TypeRequestResponded Type = "request_responded" // Sender: recipient responded
	TypePaymentApproved  Type = "payment_approved"  // PM: installment payment approved
)

// Notification represents a per-actor inbox entry written after a
// committed transition.
type Notification struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	ActorID   string     `gorm:"type:varchar(36);index:idx_notifications_actor_unread" json:"actor_id"`
	Type      Type       `gorm:"type:varchar(32)" json:"type"`
	Title     string     `gorm:"type:varchar(255)" json:"title"`
	Body      string     `gorm:"type:text" json:"body,omitempty"`
	IsRead    bool       `gorm:"default:false;index:idx_notifications_actor_unread" json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// MarkAsRead marks notification as read with timestamp
func (n *Notification) MarkAsRead() {
	n.IsRead = true
	now := time.Now()
	n.ReadAt = &now
}
