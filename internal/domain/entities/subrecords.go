package entities

import (
	"encoding/json"
	"time"
)

// Sub-records are written by the multi-step form flow, one per step. Form
// validation lives client-side; the pipeline only depends on the typed
// fields below. Anything else a step submits is kept verbatim in Extra.

// Profile holds the applicant identity collected in step 1.
type Profile struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id,omitempty"`
	BirthDate  string          `json:"birth_date,omitempty"`
	Extra      json.RawMessage `json:"extra,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Contact holds phone and address data collected in step 2. The phone number
// receives the NIP; the address feeds the bureau query. Address fields are
// optional: providers degrade to a lower-confidence report when they are
// missing.
type Contact struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Phone        string          `json:"phone"`
	CountryCode  string          `json:"country_code"`
	Email        string          `json:"email,omitempty"`
	Street       string          `json:"street,omitempty"`
	ExtNumber    string          `json:"ext_number,omitempty"`
	Neighborhood string          `json:"neighborhood,omitempty"`
	City         string          `json:"city,omitempty"`
	State        string          `json:"state,omitempty"`
	PostalCode   string          `json:"postal_code,omitempty"`
	Extra        json.RawMessage `json:"extra,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Financial holds income data collected in step 3.
type Financial struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	MonthlyIncome   float64         `json:"monthly_income"`
	MonthlyExpenses float64         `json:"monthly_expenses,omitempty"`
	Employment      string          `json:"employment,omitempty"`
	Extra           json.RawMessage `json:"extra,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Equipment holds the financed purchase collected in step 4.
type Equipment struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Description         string          `json:"description"`
	Price               float64         `json:"price"`
	DownPayment         float64         `json:"down_payment,omitempty"`
	RequestedTermMonths int             `json:"requested_term_months"`
	Extra               json.RawMessage `json:"extra,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// FinancedAmount is the principal a decision applies to.
func (e Equipment) FinancedAmount() float64 {
	amount := e.Price - e.DownPayment
	if amount < 0 {
		return 0
	}
	return amount
}
