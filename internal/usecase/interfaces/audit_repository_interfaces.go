package interfaces

import (
	"context"

	"credimaq/internal/domain/entities"
)

// Audit repositories are append-only on purpose: none of them expose an
// update or delete.

// IEvaluationHistoryRepository persists one row per evaluation attempt,
// fallback attempts included.

type IEvaluationHistoryRepository interface {
	Append(ctx context.Context, e entities.EvaluationHistoryEntry) (entities.EvaluationHistoryEntry, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.EvaluationHistoryEntry, error)
}

// IAnalystDecisionRepository persists immutable analyst verdicts.

type IAnalystDecisionRepository interface {
	Append(ctx context.Context, d entities.AnalystDecision) (entities.AnalystDecision, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.AnalystDecision, error)
}

// IActivityRepository persists the application activity trail.

type IActivityRepository interface {
	Append(ctx context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.ActivityEntry, error)
}
