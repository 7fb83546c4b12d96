package entities

import (
	"encoding/json"
	"time"
)

// Status represents the lifecycle of a credit application.
//
// Domain notes:
//   - credimaq is the source of truth for application state.
//   - The status field is only ever written through the application
//     repository's conditional updates, keyed on the expected current status.
//   - approved and rejected are terminal. in_review waits on a human analyst.

type Status string

const (
	StatusIncomplete      Status = "incomplete"
	StatusPendingNIP      Status = "pending_nip"
	StatusPendingAnalysis Status = "pending_analysis"
	StatusInReview        Status = "in_review"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

// statusTransitions is the authoritative transition table. The pending_nip
// self-loop covers OTP resends (the request id is replaced, the status is
// rewritten unchanged). The single backward edge, pending_nip -> incomplete,
// is the operator repair path and is listed here so repair stays inside the
// machine rather than around it.
var statusTransitions = map[Status][]Status{
	StatusIncomplete:      {StatusPendingNIP},
	StatusPendingNIP:      {StatusPendingNIP, StatusPendingAnalysis, StatusIncomplete},
	StatusPendingAnalysis: {StatusApproved, StatusInReview, StatusRejected},
	StatusInReview:        {StatusApproved, StatusRejected},
	StatusApproved:        {},
	StatusRejected:        {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether moving from s to next follows an edge in
// the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range statusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Role identifies the class of actor performing an operation.

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleAnalyst   Role = "analyst"
	RoleAdmin     Role = "admin"
)

func (r Role) CanReview() bool {
	return r == RoleAnalyst || r == RoleAdmin
}

// ProviderPayload is the tagged raw response kept for audit. Payload shapes
// differ per provider, so callers match on Provider instead of parsing the
// blob structurally.

type ProviderPayload struct {
	Provider string          `json:"provider"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// Application is the aggregate root persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Sub-record ids stay empty until the corresponding form step completes.
// UpdatedAt is the effective version token: every mutation sets it.

type Application struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status Status `json:"status"`

	ProfileID   string `json:"profile_id,omitempty"`
	ContactID   string `json:"contact_id,omitempty"`
	FinancialID string `json:"financial_id,omitempty"`
	EquipmentID string `json:"equipment_id,omitempty"`

	TermsAccepted         bool `json:"terms_accepted"`
	CreditCheckAuthorized bool `json:"credit_check_authorized"`

	OTPRequestID string `json:"otp_request_id,omitempty"`
	OTPValidated bool   `json:"otp_validated"`

	CreditScore        int             `json:"credit_score,omitempty"`
	ApprovedAmount     float64         `json:"approved_amount,omitempty"`
	ApprovedTermMonths int             `json:"approved_term_months,omitempty"`
	MonthlyPayment     float64         `json:"monthly_payment,omitempty"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	Provider           string          `json:"provider,omitempty"`
	ProviderRequestID  string          `json:"provider_request_id,omitempty"`
	ProviderResponse   ProviderPayload `json:"provider_response,omitempty"`

	AnalystID           string     `json:"analyst_id,omitempty"`
	AssignedAt          *time.Time `json:"assigned_at,omitempty"`
	AnalysisStartedAt   *time.Time `json:"analysis_started_at,omitempty"`
	AnalysisCompletedAt *time.Time `json:"analysis_completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReadyToFinish reports whether the application satisfies the guard for the
// incomplete -> pending_nip transition: all four sub-records present.
func (a Application) ReadyToFinish() bool {
	return a.ProfileID != "" && a.ContactID != "" && a.FinancialID != "" && a.EquipmentID != ""
}
