package usecase

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	simulatedScoreMin = 300
	simulatedScoreMax = 850
)

// SimulatedEvaluationStrategy generates a pseudo-random score and always
// routes the application to human review. That it never auto-decides is the
// current business rule, not a placeholder: it was flagged with product and
// must be preserved as-is.

type SimulatedEvaluationStrategy struct {
	logger *zap.Logger
}

var _ interfaces.IEvaluationStrategy = (*SimulatedEvaluationStrategy)(nil)

func NewSimulatedEvaluationStrategy(logger *zap.Logger) *SimulatedEvaluationStrategy {
	return &SimulatedEvaluationStrategy{logger: logger}
}

func (s *SimulatedEvaluationStrategy) Name() string {
	return "simulated"
}

func (s *SimulatedEvaluationStrategy) Evaluate(_ context.Context, in interfaces.EvaluationInput) (interfaces.EvaluationResult, error) {
	score := simulatedScoreMin + rand.IntN(simulatedScoreMax-simulatedScoreMin+1)
	raw, _ := json.Marshal(map[string]any{
		"score":      score,
		"score_name": "SIM",
		"simulated":  true,
	})
	s.logger.Info("simulated evaluation",
		zap.String("operation", "evaluate"),
		zap.String("application_id", in.Application.ID),
		zap.Int("score", score))
	return interfaces.EvaluationResult{
		Status:    entities.StatusInReview,
		Score:     score,
		ScoreName: "SIM",
		Provider:  s.Name(),
		Raw:       raw,
	}, nil
}

// ExternalEvaluationStrategy queries the configured bureau provider with
// bounded retries and maps the normalized score through the cutoff policy.

type ExternalEvaluationStrategy struct {
	provider      interfaces.IBureauProvider
	retry         RetryPolicy
	timeout       time.Duration
	approveCutoff int
	reviewCutoff  int
	annualRate    float64
	logger        *zap.Logger
}

var _ interfaces.IEvaluationStrategy = (*ExternalEvaluationStrategy)(nil)

func NewExternalEvaluationStrategy(
	provider interfaces.IBureauProvider,
	retry RetryPolicy,
	timeout time.Duration,
	approveCutoff, reviewCutoff int,
	annualRate float64,
	logger *zap.Logger,
) *ExternalEvaluationStrategy {
	return &ExternalEvaluationStrategy{
		provider:      provider,
		retry:         retry,
		timeout:       timeout,
		approveCutoff: approveCutoff,
		reviewCutoff:  reviewCutoff,
		annualRate:    annualRate,
		logger:        logger,
	}
}

func (s *ExternalEvaluationStrategy) Name() string {
	return s.provider.Name()
}

func (s *ExternalEvaluationStrategy) Evaluate(ctx context.Context, in interfaces.EvaluationInput) (interfaces.EvaluationResult, error) {
	q := buildBureauQuery(in.Profile, in.Contact)

	var report interfaces.BureauReport
	attempt := 0
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		r, err := s.provider.QueryBureau(callCtx, q)
		if err != nil {
			s.logger.Warn("bureau query attempt failed",
				zap.String("operation", "evaluate"),
				zap.String("application_id", in.Application.ID),
				zap.String("provider", s.provider.Name()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		report = r
		return nil
	})
	if err != nil {
		return interfaces.EvaluationResult{}, err
	}

	res := interfaces.EvaluationResult{
		Score:             report.Score,
		ScoreName:         report.ScoreName,
		Provider:          s.provider.Name(),
		ProviderRequestID: report.RequestID,
		Raw:               report.Raw,
	}

	switch {
	case report.Score >= s.approveCutoff:
		amount := in.Equipment.FinancedAmount()
		term := in.Equipment.RequestedTermMonths
		res.Status = entities.StatusApproved
		res.ApprovedAmount = amount
		res.ApprovedTermMonths = term
		res.MonthlyPayment = MonthlyPayment(amount, term, s.annualRate)
	case report.Score >= s.reviewCutoff:
		res.Status = entities.StatusInReview
	default:
		res.Status = entities.StatusRejected
		res.RejectionReason = string(entities.ReasonInsufficientScore)
	}
	return res, nil
}

// buildBureauQuery maps the sub-records onto the provider payload. Missing
// address fields are simply omitted; the provider degrades to a lower-
// confidence report.
func buildBureauQuery(p entities.Profile, c entities.Contact) interfaces.BureauQuery {
	return interfaces.BureauQuery{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		NationalID:   p.NationalID,
		BirthDate:    p.BirthDate,
		Street:       c.Street,
		ExtNumber:    c.ExtNumber,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
	}
}
