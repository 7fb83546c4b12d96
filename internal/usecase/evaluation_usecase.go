package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotReadyForEvaluation = errors.New("application is not ready for evaluation")

// IEvaluationUseCase turns a pending_analysis application into a decision.

type IEvaluationUseCase interface {
	Evaluate(ctx context.Context, applicationID string) (entities.Application, error)
}

// EvaluationUseCase orchestrates the active strategy, the fallback policy and
// the audit history. The user-visible contract: evaluation never surfaces a
// provider failure — worst case is a slower fallback decision routed to
// human review.

type EvaluationUseCase struct {
	apps      interfaces.IApplicationRepository
	subs      interfaces.ISubRecordRepository
	history   interfaces.IEvaluationHistoryRepository
	external  interfaces.IEvaluationStrategy // nil on simulated-only deployments
	simulated interfaces.IEvaluationStrategy
	logger    *zap.Logger
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(
	apps interfaces.IApplicationRepository,
	subs interfaces.ISubRecordRepository,
	history interfaces.IEvaluationHistoryRepository,
	external interfaces.IEvaluationStrategy,
	simulated interfaces.IEvaluationStrategy,
	logger *zap.Logger,
) *EvaluationUseCase {
	return &EvaluationUseCase{apps: apps, subs: subs, history: history, external: external, simulated: simulated, logger: logger}
}

func (u *EvaluationUseCase) Evaluate(ctx context.Context, applicationID string) (entities.Application, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}

	app, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}

	// Re-invocation on a decided application is a no-op returning the
	// existing decision.
	if app.Status == entities.StatusInReview || app.Status.Terminal() {
		return app, nil
	}
	if app.Status != entities.StatusPendingAnalysis {
		return entities.Application{}, ErrNotReadyForEvaluation
	}

	in, err := u.loadInput(ctx, app)
	if err != nil {
		return entities.Application{}, err
	}

	strategy := u.external
	if strategy == nil {
		strategy = u.simulated
	}

	res, err := strategy.Evaluate(ctx, in)
	if err != nil {
		if strategy != u.simulated {
			res, err = u.fallback(ctx, app, in, err)
		}
		if err != nil {
			return entities.Application{}, err
		}
	}

	if err := u.appendHistory(ctx, app, res); err != nil {
		return entities.Application{}, err
	}

	updated, err := u.apps.RecordDecision(ctx, app.ID, entities.StatusPendingAnalysis, decisionUpdateFromResult(res))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// A concurrent evaluation decided first. Its decision stands.
			return u.apps.GetByID(ctx, app.ID)
		}
		return entities.Application{}, err
	}

	u.logger.Info("evaluation completed",
		zap.String("operation", "evaluate"),
		zap.String("application_id", app.ID),
		zap.String("provider", res.Provider),
		zap.Int("score", res.Score),
		zap.String("result_status", string(res.Status)))
	return updated, nil
}

// fallback records the failed external attempt and reruns the simulated
// strategy, tagging the result so the audit trail shows what happened.
func (u *EvaluationUseCase) fallback(ctx context.Context, app entities.Application, in interfaces.EvaluationInput, cause error) (interfaces.EvaluationResult, error) {
	u.logger.Warn("external evaluation failed, falling back",
		zap.String("operation", "evaluate"),
		zap.String("application_id", app.ID),
		zap.String("provider", u.external.Name()),
		zap.Error(cause))

	failedRaw, _ := json.Marshal(map[string]string{"error": cause.Error()})
	if err := u.appendHistory(ctx, app, interfaces.EvaluationResult{
		Provider: u.external.Name(),
		Raw:      failedRaw,
	}); err != nil {
		return interfaces.EvaluationResult{}, err
	}

	res, err := u.simulated.Evaluate(ctx, in)
	if err != nil {
		return interfaces.EvaluationResult{}, err
	}

	res.Provider = "fallback-" + u.external.Name()
	wrapped, merr := json.Marshal(map[string]json.RawMessage{
		"fallback_from": json.RawMessage(`"` + u.external.Name() + `"`),
		"error":         failedRaw,
		"simulated":     res.Raw,
	})
	if merr == nil {
		res.Raw = wrapped
	}
	return res, nil
}

func (u *EvaluationUseCase) appendHistory(ctx context.Context, app entities.Application, res interfaces.EvaluationResult) error {
	_, err := u.history.Append(ctx, entities.EvaluationHistoryEntry{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		UserID:        app.UserID,
		Provider:      res.Provider,
		Score:         res.Score,
		ResultStatus:  res.Status,
		Response:      entities.ProviderPayload{Provider: res.Provider, Payload: res.Raw},
		CreatedAt:     time.Now().UTC(),
	})
	return err
}

func (u *EvaluationUseCase) loadInput(ctx context.Context, app entities.Application) (interfaces.EvaluationInput, error) {
	in := interfaces.EvaluationInput{Application: app}
	var err error

	if app.ProfileID != "" {
		if in.Profile, err = u.subs.GetProfile(ctx, app.ProfileID); err != nil {
			return in, err
		}
	}
	if app.ContactID != "" {
		if in.Contact, err = u.subs.GetContact(ctx, app.ContactID); err != nil {
			return in, err
		}
	}
	if app.FinancialID != "" {
		if in.Financial, err = u.subs.GetFinancial(ctx, app.FinancialID); err != nil {
			return in, err
		}
	}
	if app.EquipmentID != "" {
		if in.Equipment, err = u.subs.GetEquipment(ctx, app.EquipmentID); err != nil {
			return in, err
		}
	}
	return in, nil
}

func decisionUpdateFromResult(res interfaces.EvaluationResult) interfaces.DecisionUpdate {
	return interfaces.DecisionUpdate{
		Status:             res.Status,
		Score:              res.Score,
		Provider:           res.Provider,
		ProviderRequestID:  res.ProviderRequestID,
		Response:           entities.ProviderPayload{Provider: res.Provider, Payload: res.Raw},
		ApprovedAmount:     res.ApprovedAmount,
		ApprovedTermMonths: res.ApprovedTermMonths,
		MonthlyPayment:     res.MonthlyPayment,
		RejectionReason:    res.RejectionReason,
	}
}
