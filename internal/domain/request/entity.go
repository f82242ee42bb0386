package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencydesk/internal/domain/status"
)

// Type classifies what the sender wants back.
type Type string

const (
	TypeApproval     Type = "approval"
	TypeFeedback     Type = "feedback"
	TypeConfirmation Type = "confirmation"
)

// Priority orders request inboxes.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// ResponseType is the recipient's verdict.
type ResponseType string

const (
	ResponseApprove        ResponseType = "approve"
	ResponseReject         ResponseType = "reject"
	ResponseRequestChanges ResponseType = "request_changes"
)

// Valid reports whether rt is a known response type.
func (rt ResponseType) Valid() bool {
	switch rt {
	case ResponseApprove, ResponseReject, ResponseRequestChanges:
		return true
	}
	return false
}

// Request is a directed message between two distinct actors with an
// at-most-once response. Only the recipient may respond, and once
// responded the record is frozen.
type Request struct {
	ID          string   `gorm:"column:id;primaryKey" json:"id"`
	Title       string   `gorm:"column:title;not null" json:"title"`
	Description string   `gorm:"column:description;not null" json:"description"`
	Type        Type     `gorm:"column:type;type:varchar(16);not null" json:"type"`
	Priority    Priority `gorm:"column:priority;type:varchar(8);not null;default:normal" json:"priority"`

	RequestedBy     string `gorm:"column:requested_by;not null;index" json:"requested_by"`
	RequestedByRole string `gorm:"column:requested_by_role;not null" json:"requested_by_role"`
	RequestedByName string `gorm:"column:requested_by_name" json:"requested_by_name"`
	Recipient       string `gorm:"column:recipient;not null;index" json:"recipient"`
	RecipientRole   string `gorm:"column:recipient_role;not null" json:"recipient_role"`
	RecipientName   string `gorm:"column:recipient_name" json:"recipient_name"`

	Status status.RequestStatus `gorm:"column:status;type:varchar(16);not null;default:pending;index" json:"status"`

	// Response fields, set exactly once by the recipient.
	ResponseType    *ResponseType `gorm:"column:response_type;type:varchar(16)" json:"response_type,omitempty"`
	ResponseMessage string        `gorm:"column:response_message" json:"response_message,omitempty"`
	RespondedBy     string        `gorm:"column:responded_by" json:"responded_by,omitempty"`
	RespondedAt     *time.Time    `gorm:"column:responded_at" json:"responded_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string {
	return "requests"
}

func (r *Request) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// IsResponded reports whether the at-most-once response has been used.
func (r *Request) IsResponded() bool {
	return r.Status == status.RequestResponded
}
