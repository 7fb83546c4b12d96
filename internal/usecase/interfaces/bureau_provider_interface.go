package interfaces

import (
	"context"
	"encoding/json"
)

// BureauQuery is the identity/address payload sent to a bureau provider.
// Address fields are optional; providers must degrade to a lower-confidence
// report rather than fail hard when they are missing.

type BureauQuery struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`

	Street       string `json:"street,omitempty"`
	ExtNumber    string `json:"ext_number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// BureauReport is the normalized provider result. Raw keeps the untouched
// provider payload for audit.

type BureauReport struct {
	Provider  string          `json:"provider"`
	RequestID string          `json:"request_id,omitempty"`
	Score     int             `json:"score"`
	ScoreName string          `json:"score_name,omitempty"`
	Raw       json.RawMessage `json:"raw,omitempty"`
}

// IBureauProvider is a concrete credit bureau integration. Providers bundle
// the identity-proofing OTP with the bureau query. Exactly one provider is
// active per deployment, selected from configuration at process start.
//
// ValidateOTP implements the provider contract's strict two-phase handshake:
// two sequential validation calls for the same requestID/code pair, where
// only the second call's response asserts the code was validated. Failures
// and timeouts surface as provider errors, never as an empty success.

type IBureauProvider interface {
	Name() string
	SendOTP(ctx context.Context, phone, countryCode string) (requestID string, err error)
	ValidateOTP(ctx context.Context, requestID, code string) (bool, error)
	QueryBureau(ctx context.Context, q BureauQuery) (BureauReport, error)
}
