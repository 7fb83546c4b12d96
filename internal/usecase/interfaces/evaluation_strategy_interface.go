package interfaces

import (
	"context"
	"encoding/json"

	"credimaq/internal/domain/entities"
)

// EvaluationInput is the application snapshot a strategy decides on.

type EvaluationInput struct {
	Application entities.Application
	Profile     entities.Profile
	Contact     entities.Contact
	Financial   entities.Financial
	Equipment   entities.Equipment
}

// EvaluationResult is a strategy's verdict. Status is one of approved,
// in_review or rejected; the remaining fields feed the application's
// decisioning columns and the history row.

type EvaluationResult struct {
	Status             entities.Status
	Score              int
	ScoreName          string
	Provider           string
	ProviderRequestID  string
	ApprovedAmount     float64
	ApprovedTermMonths int
	MonthlyPayment     float64
	RejectionReason    string
	Raw                json.RawMessage
}

// IEvaluationStrategy turns an application snapshot into a decision. The
// simulated strategy never fails; the external strategy may return a provider
// error after its retries are exhausted, in which case the evaluation service
// falls back to the simulated one.

type IEvaluationStrategy interface {
	Name() string
	Evaluate(ctx context.Context, in EvaluationInput) (EvaluationResult, error)
}
