package lead

import (
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/status"
)

// CreateLeadRequest is the add-lead form payload.
type CreateLeadRequest struct {
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Name       string `json:"name"`
	Business   string `json:"business"`
	CategoryID string `json:"category_id" validate:"required"`
}

// TransitionRequest moves a lead along a registry edge.
type TransitionRequest struct {
	Status status.LeadStatus `json:"status" validate:"required"`
}

// ProjectDraft carries the data needed to spawn a project at conversion.
type ProjectDraft struct {
	ProjectName     string                `json:"project_name" validate:"required"`
	ProjectType     string                `json:"project_type" validate:"required"`
	EstimatedBudget int64                 `json:"estimated_budget" validate:"required,gt=0"`
	StartDate       string                `json:"start_date" validate:"required"` // YYYY-MM-DD
	Plan            installment.PlanShape `json:"plan"`
}

// AssignRequest reassigns a lead to another sales actor (admin only).
type AssignRequest struct {
	OwnerID string `json:"owner_id" validate:"required"`
}

// ListFilter narrows lead listings.
type ListFilter struct {
	Status  *status.LeadStatus
	OwnerID string
	Search  string
}

// ListResponse is a paginated lead listing.
type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}
