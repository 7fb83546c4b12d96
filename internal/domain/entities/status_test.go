package entities

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusIncomplete, StatusPendingNIP},
		{StatusPendingNIP, StatusPendingNIP},
		{StatusPendingNIP, StatusPendingAnalysis},
		{StatusPendingNIP, StatusIncomplete}, // operator repair
		{StatusPendingAnalysis, StatusApproved},
		{StatusPendingAnalysis, StatusInReview},
		{StatusPendingAnalysis, StatusRejected},
		{StatusInReview, StatusApproved},
		{StatusInReview, StatusRejected},
	}

	isAllowed := func(from, to Status) bool {
		for _, e := range allowed {
			if e.from == from && e.to == to {
				return true
			}
		}
		return false
	}

	all := []Status{
		StatusIncomplete, StatusPendingNIP, StatusPendingAnalysis,
		StatusInReview, StatusApproved, StatusRejected,
	}

	t.Run("allowed edges", func(t *testing.T) {
		for _, e := range allowed {
			if !e.from.CanTransitionTo(e.to) {
				t.Fatalf("expected %s -> %s to be legal", e.from, e.to)
			}
		}
	})

	t.Run("everything else is illegal", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				if isAllowed(from, to) {
					continue
				}
				if from.CanTransitionTo(to) {
					t.Fatalf("unexpected legal transition %s -> %s", from, to)
				}
			}
		}
	})

	t.Run("terminal states have no outgoing edges", func(t *testing.T) {
		for _, from := range []Status{StatusApproved, StatusRejected} {
			for _, to := range all {
				if from.CanTransitionTo(to) {
					t.Fatalf("terminal %s must not transition to %s", from, to)
				}
			}
		}
	})
}

func TestStatus_Terminal(t *testing.T) {
	cases := map[Status]bool{
		StatusIncomplete:      false,
		StatusPendingNIP:      false,
		StatusPendingAnalysis: false,
		StatusInReview:        false,
		StatusApproved:        true,
		StatusRejected:        true,
	}
	for s, want := range cases {
		if got := s.Terminal(); got != want {
			t.Fatalf("Terminal(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	if Status("archived").Valid() {
		t.Fatalf("unknown status must not be valid")
	}
	if !StatusPendingNIP.Valid() {
		t.Fatalf("pending_nip must be valid")
	}
}

func TestApplication_ReadyToFinish(t *testing.T) {
	app := Application{ProfileID: "p", ContactID: "c", FinancialID: "f", EquipmentID: "e"}
	if !app.ReadyToFinish() {
		t.Fatalf("expected ready")
	}
	app.FinancialID = ""
	if app.ReadyToFinish() {
		t.Fatalf("expected not ready without financial record")
	}
}

func TestEquipment_FinancedAmount(t *testing.T) {
	e := Equipment{Price: 120000, DownPayment: 20000}
	if got := e.FinancedAmount(); got != 100000 {
		t.Fatalf("expected 100000, got %v", got)
	}
	e.DownPayment = 150000
	if got := e.FinancedAmount(); got != 0 {
		t.Fatalf("down payment above price must clamp to 0, got %v", got)
	}
}
