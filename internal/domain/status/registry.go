package status

// Kind identifies which entity's status machine is being consulted.
type Kind string

const (
	KindLead        Kind = "lead"
	KindRequest     Kind = "request"
	KindInstallment Kind = "installment"
)

// LeadStatus enumerates the sales pipeline states.
type LeadStatus string

const (
	LeadNew           LeadStatus = "new"
	LeadConnected     LeadStatus = "connected"
	LeadNotPicked     LeadStatus = "not_picked"
	LeadHot           LeadStatus = "hot"
	LeadFollowup      LeadStatus = "followup"
	LeadQuotationSent LeadStatus = "quotation_sent"
	LeadDQSent        LeadStatus = "dq_sent"
	LeadAppClient     LeadStatus = "app_client"
	LeadWeb           LeadStatus = "web"
	LeadDemoRequested LeadStatus = "demo_requested"
	LeadConverted     LeadStatus = "converted"
	LeadLost          LeadStatus = "lost"
	LeadNotInterested LeadStatus = "not_interested"
)

// RequestStatus enumerates the submit→respond protocol states.
type RequestStatus string

const (
	RequestDraft     RequestStatus = "draft"
	RequestPending   RequestStatus = "pending"
	RequestResponded RequestStatus = "responded"
)

// InstallmentStatus enumerates payment slice states. Overdue is derived
// from due date at read time and never stored.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentOverdue InstallmentStatus = "overdue"
	InstallmentPaid    InstallmentStatus = "paid"
)

// leadTerminal statuses have no outbound edges.
var leadTerminal = map[LeadStatus]bool{
	LeadConverted:     true,
	LeadLost:          true,
	LeadNotInterested: true,
}

// leadEdges holds the staged edges. Abandon/convert edges
// (converted, lost, not_interested) are legal from every
// non-terminal status and are handled separately.
var leadEdges = map[LeadStatus]map[LeadStatus]bool{
	LeadNew: {
		LeadConnected: true,
		LeadNotPicked: true,
	},
	LeadNotPicked: {
		LeadConnected: true,
	},
	LeadConnected: {
		LeadHot:           true,
		LeadFollowup:      true,
		LeadQuotationSent: true,
		LeadDQSent:        true,
		LeadAppClient:     true,
		LeadWeb:           true,
		LeadDemoRequested: true,
	},
}

var requestEdges = map[RequestStatus]map[RequestStatus]bool{
	RequestDraft:   {RequestPending: true},
	RequestPending: {RequestResponded: true},
}

var leadStatuses = map[LeadStatus]bool{
	LeadNew: true, LeadConnected: true, LeadNotPicked: true,
	LeadHot: true, LeadFollowup: true, LeadQuotationSent: true,
	LeadDQSent: true, LeadAppClient: true, LeadWeb: true,
	LeadDemoRequested: true, LeadConverted: true, LeadLost: true,
	LeadNotInterested: true,
}

// IsLeadStatus reports whether s is a member of the closed lead enum.
func IsLeadStatus(s LeadStatus) bool {
	return leadStatuses[s]
}

// IsTerminalLead reports whether s has no outbound edges.
func IsTerminalLead(s LeadStatus) bool {
	return leadTerminal[s]
}

// IsLegalLeadTransition reports whether from→to is a legal lead edge.
// Self-loops are never legal. From any non-terminal status the lead may
// always be converted, lost or marked not interested.
func IsLegalLeadTransition(from, to LeadStatus) bool {
	if !leadStatuses[from] || !leadStatuses[to] || from == to {
		return false
	}
	if leadTerminal[from] {
		return false
	}
	if leadTerminal[to] {
		return true
	}
	return leadEdges[from][to]
}

// IsLegalRequestTransition reports whether from→to is a legal request edge.
func IsLegalRequestTransition(from, to RequestStatus) bool {
	return requestEdges[from][to]
}

// IsLegalTransition is the kind-dispatched form used by callers that hold
// statuses as plain strings. Installments have no caller-settable status
// edges at all: pending→paid exists only inside the approval operation, so
// every pair is reported illegal here.
func IsLegalTransition(kind Kind, from, to string) bool {
	switch kind {
	case KindLead:
		return IsLegalLeadTransition(LeadStatus(from), LeadStatus(to))
	case KindRequest:
		return IsLegalRequestTransition(RequestStatus(from), RequestStatus(to))
	default:
		return false
	}
}
