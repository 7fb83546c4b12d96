package response

import (
	"time"

	"credimaq/internal/domain/entities"
)

type ApplicationResponse struct {
	ApplicationID string `json:"application_id"`
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`

	ProfileID   string `json:"profile_id,omitempty"`
	ContactID   string `json:"contact_id,omitempty"`
	FinancialID string `json:"financial_id,omitempty"`
	EquipmentID string `json:"equipment_id,omitempty"`

	TermsAccepted         bool `json:"terms_accepted"`
	CreditCheckAuthorized bool `json:"credit_check_authorized"`
	OTPValidated          bool `json:"otp_validated"`

	CreditScore        int     `json:"credit_score,omitempty"`
	ApprovedAmount     float64 `json:"approved_amount,omitempty"`
	ApprovedTermMonths int     `json:"approved_term_months,omitempty"`
	MonthlyPayment     float64 `json:"monthly_payment,omitempty"`
	RejectionReason    string  `json:"rejection_reason,omitempty"`
	Provider           string  `json:"provider,omitempty"`

	AnalystID           string     `json:"analyst_id,omitempty"`
	AssignedAt          *time.Time `json:"assigned_at,omitempty"`
	AnalysisStartedAt   *time.Time `json:"analysis_started_at,omitempty"`
	AnalysisCompletedAt *time.Time `json:"analysis_completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromApplication builds the client view of an application. The raw provider
// payload stays internal; clients get the normalized decision fields only.
func FromApplication(a entities.Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:         a.ID,
		ID:                    a.ID,
		UserID:                a.UserID,
		Status:                string(a.Status),
		ProfileID:             a.ProfileID,
		ContactID:             a.ContactID,
		FinancialID:           a.FinancialID,
		EquipmentID:           a.EquipmentID,
		TermsAccepted:         a.TermsAccepted,
		CreditCheckAuthorized: a.CreditCheckAuthorized,
		OTPValidated:          a.OTPValidated,
		CreditScore:           a.CreditScore,
		ApprovedAmount:        a.ApprovedAmount,
		ApprovedTermMonths:    a.ApprovedTermMonths,
		MonthlyPayment:        a.MonthlyPayment,
		RejectionReason:       a.RejectionReason,
		Provider:              a.Provider,
		AnalystID:             a.AnalystID,
		AssignedAt:            a.AssignedAt,
		AnalysisStartedAt:     a.AnalysisStartedAt,
		AnalysisCompletedAt:   a.AnalysisCompletedAt,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// FinishResponse tells the client whether finish advanced the application or
// resumed an already-advanced one.
type FinishResponse struct {
	ApplicationResponse
	Resumed bool `json:"resumed"`
}
