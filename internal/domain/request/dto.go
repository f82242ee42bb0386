package request

// CreateRequest is the new-request form payload. SaveAsDraft keeps the
// request unsent so it can be edited and sent later.
type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        Type     `json:"type" validate:"required,oneof=approval feedback confirmation"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=urgent high normal low"`
	Recipient   string   `json:"recipient" validate:"required"`
	SaveAsDraft bool     `json:"save_as_draft"`
}

// RespondRequest is the recipient's one-shot response.
type RespondRequest struct {
	Type    ResponseType `json:"type" validate:"required,oneof=approve reject request_changes"`
	Message string       `json:"message"`
}

// ListFilter narrows request listings.
type ListFilter struct {
	Status string
	Search string
}
