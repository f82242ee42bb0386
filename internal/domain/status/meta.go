package status

// Meta carries display attributes for a status. Kept here so dashboards
// and transition logic read from the same table instead of maintaining
// separate label/color maps.
type Meta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var leadMeta = map[LeadStatus]Meta{
	LeadNew:           {Label: "New", Color: "#64748b"},
	LeadConnected:     {Label: "Connected", Color: "#0ea5e9"},
	LeadNotPicked:     {Label: "Not Picked", Color: "#a1a1aa"},
	LeadHot:           {Label: "Hot", Color: "#ef4444"},
	LeadFollowup:      {Label: "Follow-up", Color: "#f59e0b"},
	LeadQuotationSent: {Label: "Quotation Sent", Color: "#8b5cf6"},
	LeadDQSent:        {Label: "DQ Sent", Color: "#6366f1"},
	LeadAppClient:     {Label: "App Client", Color: "#14b8a6"},
	LeadWeb:           {Label: "Web", Color: "#06b6d4"},
	LeadDemoRequested: {Label: "Demo Requested", Color: "#ec4899"},
	LeadConverted:     {Label: "Converted", Color: "#22c55e"},
	LeadLost:          {Label: "Lost", Color: "#71717a"},
	LeadNotInterested: {Label: "Not Interested", Color: "#737373"},
}

var requestMeta = map[RequestStatus]Meta{
	RequestDraft:     {Label: "Draft", Color: "#a1a1aa"},
	RequestPending:   {Label: "Pending", Color: "#f59e0b"},
	RequestResponded: {Label: "Responded", Color: "#22c55e"},
}

var installmentMeta = map[InstallmentStatus]Meta{
	InstallmentPending: {Label: "Pending", Color: "#f59e0b"},
	InstallmentOverdue: {Label: "Overdue", Color: "#ef4444"},
	InstallmentPaid:    {Label: "Paid", Color: "#22c55e"},
}

// MetaFor returns display metadata for a status of the given kind.
// Unknown statuses get a zero Meta.
func MetaFor(kind Kind, s string) Meta {
	switch kind {
	case KindLead:
		return leadMeta[LeadStatus(s)]
	case KindRequest:
		return requestMeta[RequestStatus(s)]
	case KindInstallment:
		return installmentMeta[InstallmentStatus(s)]
	}
	return Meta{}
}

// LeadStatuses returns the closed lead enum in pipeline order.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadNew, LeadConnected, LeadNotPicked, LeadHot, LeadFollowup,
		LeadQuotationSent, LeadDQSent, LeadAppClient, LeadWeb,
		LeadDemoRequested, LeadConverted, LeadLost, LeadNotInterested,
	}
}
