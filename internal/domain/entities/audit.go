package entities

import "time"

// EvaluationHistoryEntry is the append-only audit record written for every
// evaluation attempt, fallback attempts included. Entries are never mutated
// or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (application_id-index): application_id

type EvaluationHistoryEntry struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	UserID        string          `json:"user_id"`
	Provider      string          `json:"provider"`
	Score         int             `json:"score,omitempty"`
	ResultStatus  Status          `json:"result_status,omitempty"`
	Response      ProviderPayload `json:"response"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DecisionType discriminates analyst verdicts.

type DecisionType string

const (
	DecisionApprove DecisionType = "approve"
	DecisionReject  DecisionType = "reject"
)

// RejectionReason is the closed reason set for reject decisions. ReasonOther
// requires free text.

type RejectionReason string

const (
	ReasonInsufficientScore       RejectionReason = "insufficient_score"
	ReasonExcessiveDebt           RejectionReason = "excessive_debt"
	ReasonUnverifiableIdentity    RejectionReason = "unverifiable_identity"
	ReasonIncompleteDocumentation RejectionReason = "incomplete_documentation"
	ReasonOther                   RejectionReason = "other"
)

func (r RejectionReason) Valid() bool {
	switch r {
	case ReasonInsufficientScore, ReasonExcessiveDebt, ReasonUnverifiableIdentity,
		ReasonIncompleteDocumentation, ReasonOther:
		return true
	}
	return false
}

// AnalystDecision is the immutable record of a human verdict. The repository
// exposes no update or delete for it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (application_id-index): application_id

type AnalystDecision struct {
	ID             string          `json:"id"`
	ApplicationID  string          `json:"application_id"`
	AnalystID      string          `json:"analyst_id"`
	Type           DecisionType    `json:"type"`
	Amount         float64         `json:"amount,omitempty"`
	TermMonths     int             `json:"term_months,omitempty"`
	MonthlyPayment float64         `json:"monthly_payment,omitempty"`
	Reason         RejectionReason `json:"reason,omitempty"`
	ReasonText     string          `json:"reason_text,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ActivityEntry is one row of the append-only activity trail: every action
// taken on an application (assignment, analysis start, verdicts, NIP
// validation, repairs), distinct from the decision record itself.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (application_id-index): application_id

type ActivityEntry struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	ActorID       string    `json:"actor_id"`
	ActorRole     Role      `json:"actor_role"`
	Action        string    `json:"action"`
	Detail        string    `json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Activity trail action names.
const (
	ActionNIPValidated  = "nip_validated"
	ActionAssigned      = "assigned"
	ActionStarted       = "analysis_started"
	ActionApproved      = "approved"
	ActionRejected      = "rejected"
	ActionRepaired      = "repaired"
	ActionChargeCreated = "down_payment_charge_created"
)
