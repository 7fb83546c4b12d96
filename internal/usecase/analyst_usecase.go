package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotAuthorized          = errors.New("caller is not authorized for this operation")
	ErrNotAssignedAnalyst     = errors.New("caller is not the assigned analyst")
	ErrAlreadyAssigned        = errors.New("application is already assigned")
	ErrNotAssigned            = errors.New("application is not assigned")
	ErrAnalysisAlreadyStarted = errors.New("analysis already started")
	ErrAnalysisNotStarted     = errors.New("analysis has not been started")
	ErrNotInReview            = errors.New("application is not in review")
	ErrAlreadyDecided         = errors.New("application already has a final decision")
	ErrInvalidDecisionInput   = errors.New("invalid decision input")
	ErrInvalidRejectionReason = errors.New("invalid rejection reason")
)

type ApproveInput struct {
	Amount     float64
	TermMonths int
	Comment    string
}

type RejectInput struct {
	Reason     entities.RejectionReason
	ReasonText string
	Comment    string
}

// Timeline is the full audit view of one application.

type Timeline struct {
	Application entities.Application              `json:"application"`
	History     []entities.EvaluationHistoryEntry `json:"history"`
	Decisions   []entities.AnalystDecision        `json:"decisions"`
	Activity    []entities.ActivityEntry          `json:"activity"`
}

// IAnalystUseCase exposes the human review workflow over in_review
// applications.

type IAnalystUseCase interface {
	Assign(ctx context.Context, actor Actor, applicationID string) (entities.Application, error)
	StartAnalysis(ctx context.Context, actor Actor, applicationID string) (entities.Application, error)
	Approve(ctx context.Context, actor Actor, applicationID string, in ApproveInput) (entities.Application, error)
	Reject(ctx context.Context, actor Actor, applicationID string, in RejectInput) (entities.Application, error)
	Timeline(ctx context.Context, actor Actor, applicationID string) (Timeline, error)
}

type AnalystUseCase struct {
	apps         interfaces.IApplicationRepository
	subs         interfaces.ISubRecordRepository
	decisions    interfaces.IAnalystDecisionRepository
	activity     interfaces.IActivityRepository
	history      interfaces.IEvaluationHistoryRepository
	downPayments interfaces.IDownPaymentGateway // optional
	annualRate   float64
	logger       *zap.Logger
}

var _ IAnalystUseCase = (*AnalystUseCase)(nil)

func NewAnalystUseCase(
	apps interfaces.IApplicationRepository,
	subs interfaces.ISubRecordRepository,
	decisions interfaces.IAnalystDecisionRepository,
	activity interfaces.IActivityRepository,
	history interfaces.IEvaluationHistoryRepository,
	downPayments interfaces.IDownPaymentGateway,
	annualRate float64,
	logger *zap.Logger,
) *AnalystUseCase {
	return &AnalystUseCase{
		apps:         apps,
		subs:         subs,
		decisions:    decisions,
		activity:     activity,
		history:      history,
		downPayments: downPayments,
		annualRate:   annualRate,
		logger:       logger,
	}
}

// Assign claims an unassigned in_review application for the caller. First
// writer wins: losing the race is a conflict, never a silent success.
func (u *AnalystUseCase) Assign(ctx context.Context, actor Actor, applicationID string) (entities.Application, error) {
	app, err := u.loadForReview(ctx, actor, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.StatusInReview {
		return entities.Application{}, ErrNotInReview
	}
	if app.AnalystID != "" {
		return entities.Application{}, ErrAlreadyAssigned
	}

	updated, err := u.apps.Assign(ctx, app.ID, actor.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Application{}, ErrAlreadyAssigned
		}
		return entities.Application{}, err
	}

	if err := u.appendActivity(ctx, actor, app.ID, entities.ActionAssigned, ""); err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("application assigned",
		zap.String("operation", "assign"),
		zap.String("application_id", app.ID),
		zap.String("analyst_id", actor.ID))
	return updated, nil
}

// StartAnalysis stamps analysis_started_at exactly once; only the assigned
// analyst or an admin may do it.
func (u *AnalystUseCase) StartAnalysis(ctx context.Context, actor Actor, applicationID string) (entities.Application, error) {
	app, err := u.loadForReview(ctx, actor, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.StatusInReview {
		return entities.Application{}, ErrNotInReview
	}
	if app.AnalystID == "" {
		return entities.Application{}, ErrNotAssigned
	}
	if app.AnalystID != actor.ID && actor.Role != entities.RoleAdmin {
		return entities.Application{}, ErrNotAssignedAnalyst
	}
	if app.AnalysisStartedAt != nil {
		return entities.Application{}, ErrAnalysisAlreadyStarted
	}

	updated, err := u.apps.StartAnalysis(ctx, app.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Application{}, ErrAnalysisAlreadyStarted
		}
		return entities.Application{}, err
	}

	if err := u.appendActivity(ctx, actor, app.ID, entities.ActionStarted, ""); err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("analysis started",
		zap.String("operation", "start_analysis"),
		zap.String("application_id", app.ID),
		zap.String("analyst_id", actor.ID))
	return updated, nil
}

func (u *AnalystUseCase) Approve(ctx context.Context, actor Actor, applicationID string, in ApproveInput) (entities.Application, error) {
	app, err := u.loadForDecision(ctx, actor, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if in.Amount <= 0 || in.TermMonths <= 0 {
		return entities.Application{}, ErrInvalidDecisionInput
	}

	monthly := MonthlyPayment(in.Amount, in.TermMonths, u.annualRate)
	now := time.Now().UTC()

	// The conditional transition goes first: only its winner writes the
	// immutable decision row, so a lost race leaves no orphan verdict on the
	// timeline.
	updated, err := u.apps.RecordDecision(ctx, app.ID, entities.StatusInReview, interfaces.DecisionUpdate{
		Status:             entities.StatusApproved,
		ApprovedAmount:     in.Amount,
		ApprovedTermMonths: in.TermMonths,
		MonthlyPayment:     monthly,
		CompletedAt:        &now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Application{}, ErrAlreadyDecided
		}
		return entities.Application{}, err
	}

	if _, err := u.decisions.Append(ctx, entities.AnalystDecision{
		ID:             uuid.NewString(),
		ApplicationID:  app.ID,
		AnalystID:      actor.ID,
		Type:           entities.DecisionApprove,
		Amount:         in.Amount,
		TermMonths:     in.TermMonths,
		MonthlyPayment: monthly,
		Comment:        in.Comment,
		CreatedAt:      now,
	}); err != nil {
		return entities.Application{}, err
	}

	if err := u.appendActivity(ctx, actor, app.ID, entities.ActionApproved,
		fmt.Sprintf("amount=%.2f term=%d monthly=%.0f", in.Amount, in.TermMonths, monthly)); err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("application approved",
		zap.String("operation", "approve"),
		zap.String("application_id", app.ID),
		zap.String("analyst_id", actor.ID),
		zap.Float64("amount", in.Amount),
		zap.Int("term_months", in.TermMonths),
		zap.Float64("monthly_payment", monthly))

	u.createDownPaymentCharge(ctx, actor, updated)
	return updated, nil
}

func (u *AnalystUseCase) Reject(ctx context.Context, actor Actor, applicationID string, in RejectInput) (entities.Application, error) {
	app, err := u.loadForDecision(ctx, actor, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if !in.Reason.Valid() {
		return entities.Application{}, ErrInvalidRejectionReason
	}
	if in.Reason == entities.ReasonOther && strings.TrimSpace(in.ReasonText) == "" {
		return entities.Application{}, ErrInvalidRejectionReason
	}

	now := time.Now().UTC()
	updated, err := u.apps.RecordDecision(ctx, app.ID, entities.StatusInReview, interfaces.DecisionUpdate{
		Status:          entities.StatusRejected,
		RejectionReason: string(in.Reason),
		CompletedAt:     &now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Application{}, ErrAlreadyDecided
		}
		return entities.Application{}, err
	}

	if _, err := u.decisions.Append(ctx, entities.AnalystDecision{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		AnalystID:     actor.ID,
		Type:          entities.DecisionReject,
		Reason:        in.Reason,
		ReasonText:    in.ReasonText,
		Comment:       in.Comment,
		CreatedAt:     now,
	}); err != nil {
		return entities.Application{}, err
	}

	if err := u.appendActivity(ctx, actor, app.ID, entities.ActionRejected, string(in.Reason)); err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("application rejected",
		zap.String("operation", "reject"),
		zap.String("application_id", app.ID),
		zap.String("analyst_id", actor.ID),
		zap.String("reason", string(in.Reason)))
	return updated, nil
}

func (u *AnalystUseCase) Timeline(ctx context.Context, actor Actor, applicationID string) (Timeline, error) {
	app, err := u.loadForReview(ctx, actor, applicationID)
	if err != nil {
		return Timeline{}, err
	}

	history, err := u.history.ListByApplicationID(ctx, app.ID)
	if err != nil {
		return Timeline{}, err
	}
	decisions, err := u.decisions.ListByApplicationID(ctx, app.ID)
	if err != nil {
		return Timeline{}, err
	}
	activity, err := u.activity.ListByApplicationID(ctx, app.ID)
	if err != nil {
		return Timeline{}, err
	}
	return Timeline{Application: app, History: history, Decisions: decisions, Activity: activity}, nil
}

// createDownPaymentCharge raises the optional charge after approval. Failures
// are logged, never propagated: the decision already stands.
func (u *AnalystUseCase) createDownPaymentCharge(ctx context.Context, actor Actor, app entities.Application) {
	if u.downPayments == nil || app.EquipmentID == "" {
		return
	}
	equipment, err := u.subs.GetEquipment(ctx, app.EquipmentID)
	if err != nil || equipment.DownPayment <= 0 {
		return
	}

	chargeID, _, err := u.downPayments.CreateCharge(ctx, app.ID, equipment.DownPayment,
		fmt.Sprintf("Down payment for application %s", app.ID))
	if err != nil {
		u.logger.Warn("down payment charge failed",
			zap.String("operation", "approve"),
			zap.String("application_id", app.ID),
			zap.Error(err))
		return
	}
	if err := u.appendActivity(ctx, actor, app.ID, entities.ActionChargeCreated, chargeID); err != nil {
		u.logger.Warn("down payment activity append failed",
			zap.String("application_id", app.ID),
			zap.Error(err))
	}
}

// loadForDecision checks everything a terminal verdict requires: review
// state, assignment, started analysis and caller identity.
func (u *AnalystUseCase) loadForDecision(ctx context.Context, actor Actor, applicationID string) (entities.Application, error) {
	app, err := u.loadForReview(ctx, actor, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status.Terminal() {
		return entities.Application{}, ErrAlreadyDecided
	}
	if app.Status != entities.StatusInReview {
		return entities.Application{}, ErrNotInReview
	}
	if app.AnalystID == "" {
		return entities.Application{}, ErrNotAssigned
	}
	if app.AnalystID != actor.ID && actor.Role != entities.RoleAdmin {
		return entities.Application{}, ErrNotAssignedAnalyst
	}
	if app.AnalysisStartedAt == nil {
		return entities.Application{}, ErrAnalysisNotStarted
	}
	return app, nil
}

func (u *AnalystUseCase) loadForReview(ctx context.Context, actor Actor, applicationID string) (entities.Application, error) {
	if !actor.Role.CanReview() {
		return entities.Application{}, ErrNotAuthorized
	}
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
	return app, nil
}

func (u *AnalystUseCase) appendActivity(ctx context.Context, actor Actor, applicationID, action, detail string) error {
	_, err := u.activity.Append(ctx, entities.ActivityEntry{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		Action:        action,
		Detail:        detail,
		CreatedAt:     time.Now().UTC(),
	})
	return err
}
