package request

import "encoding/json"

// StepRequest carries one form step's payload. Data is passed through to the
// use case untouched; each step's schema is validated there.
type StepRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

// FinishRequest carries the step-5 consents.
type FinishRequest struct {
	TermsAccepted         bool `json:"terms_accepted"`
	CreditCheckAuthorized bool `json:"credit_check_authorized"`
}

// ValidateCodeRequest carries the NIP code typed by the applicant.
type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
