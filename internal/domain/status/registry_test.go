package status

import "testing"

func TestNewOutboundEdges(t *testing.T) {
	legal := []LeadStatus{LeadConnected, LeadNotPicked, LeadLost, LeadConverted, LeadNotInterested}
	for _, to := range legal {
		if !IsLegalLeadTransition(LeadNew, to) {
			t.Errorf("expected new -> %s to be legal", to)
		}
	}

	illegal := []LeadStatus{LeadHot, LeadFollowup, LeadQuotationSent, LeadDQSent, LeadAppClient, LeadWeb, LeadNew}
	for _, to := range illegal {
		if IsLegalLeadTransition(LeadNew, to) {
			t.Errorf("expected new -> %s to be illegal", to)
		}
	}
}

func TestConnectedOutboundEdges(t *testing.T) {
	legal := []LeadStatus{
		LeadHot, LeadFollowup, LeadQuotationSent, LeadDQSent,
		LeadAppClient, LeadWeb, LeadDemoRequested,
		LeadConverted, LeadLost, LeadNotInterested,
	}
	for _, to := range legal {
		if !IsLegalLeadTransition(LeadConnected, to) {
			t.Errorf("expected connected -> %s to be legal", to)
		}
	}
	if IsLegalLeadTransition(LeadConnected, LeadNew) {
		t.Error("expected connected -> new to be illegal")
	}
}

func TestAbandonAndConvertLegalFromAnyNonTerminal(t *testing.T) {
	for _, from := range LeadStatuses() {
		if IsTerminalLead(from) {
			continue
		}
		for _, to := range []LeadStatus{LeadConverted, LeadLost, LeadNotInterested} {
			if !IsLegalLeadTransition(from, to) {
				t.Errorf("expected %s -> %s to be legal", from, to)
			}
		}
	}
}

func TestTerminalStatusesHaveNoOutboundEdges(t *testing.T) {
	for _, from := range []LeadStatus{LeadConverted, LeadLost, LeadNotInterested} {
		for _, to := range LeadStatuses() {
			if IsLegalLeadTransition(from, to) {
				t.Errorf("expected terminal %s -> %s to be illegal", from, to)
			}
		}
	}
}

func TestSelfLoopsAreIllegal(t *testing.T) {
	for _, s := range LeadStatuses() {
		if IsLegalLeadTransition(s, s) {
			t.Errorf("expected self-loop on %s to be illegal", s)
		}
	}
}

func TestUnknownStatusesAreIllegal(t *testing.T) {
	if IsLegalLeadTransition("bogus", LeadConnected) {
		t.Error("expected unknown source status to be illegal")
	}
	if IsLegalLeadTransition(LeadNew, "bogus") {
		t.Error("expected unknown target status to be illegal")
	}
}

func TestRequestEdges(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestDraft, RequestPending, true},
		{RequestPending, RequestResponded, true},
		{RequestDraft, RequestResponded, false},
		{RequestPending, RequestDraft, false},
		{RequestResponded, RequestPending, false},
		{RequestResponded, RequestResponded, false},
		{RequestPending, RequestPending, false},
		{RequestDraft, RequestDraft, false},
	}
	for _, c := range cases {
		if got := IsLegalRequestTransition(c.from, c.to); got != c.want {
			t.Errorf("request %s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestInstallmentHasNoCallerSettableEdges(t *testing.T) {
	pairs := [][2]string{
		{"pending", "paid"},
		{"pending", "overdue"},
		{"overdue", "paid"},
		{"paid", "pending"},
	}
	for _, p := range pairs {
		if IsLegalTransition(KindInstallment, p[0], p[1]) {
			t.Errorf("expected installment %s -> %s to be illegal via registry", p[0], p[1])
		}
	}
}

func TestKindDispatch(t *testing.T) {
	if !IsLegalTransition(KindLead, "new", "connected") {
		t.Error("expected lead new -> connected legal via kind dispatch")
	}
	if !IsLegalTransition(KindRequest, "draft", "pending") {
		t.Error("expected request draft -> pending legal via kind dispatch")
	}
	if IsLegalTransition("unknown", "new", "connected") {
		t.Error("expected unknown kind to be illegal")
	}
}
