package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"
	mock_interfaces "credimaq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestEvaluationUseCase_Evaluate(t *testing.T) {
	pending := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingAnalysis}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		uc := NewEvaluationUseCase(apps, nil, nil, nil, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Application{}, nil)

		_, err := uc.Evaluate(context.Background(), "app-1")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("re-invocation on a decided application is a no-op", func(t *testing.T) {
		for _, status := range []entities.Status{entities.StatusInReview, entities.StatusApproved, entities.StatusRejected} {
			ctrl := gomock.NewController(t)
			apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
			uc := NewEvaluationUseCase(apps, nil, nil, nil, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

			decided := pending
			decided.Status = status
			apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(decided, nil)

			app, err := uc.Evaluate(context.Background(), "app-1")
			if err != nil {
				t.Fatalf("status %s: unexpected error: %v", status, err)
			}
			if app.Status != status {
				t.Fatalf("status %s: expected existing decision untouched, got %s", status, app.Status)
			}
			ctrl.Finish()
		}
	})

	t.Run("rejects statuses before pending_analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		uc := NewEvaluationUseCase(apps, nil, nil, nil, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

		early := pending
		early.Status = entities.StatusPendingNIP
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(early, nil)

		_, err := uc.Evaluate(context.Background(), "app-1")
		if !errors.Is(err, ErrNotReadyForEvaluation) {
			t.Fatalf("expected ErrNotReadyForEvaluation, got %v", err)
		}
	})

	t.Run("simulated deployment always routes to review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		subs := mock_interfaces.NewMockISubRecordRepository(ctrl)
		history := mock_interfaces.NewMockIEvaluationHistoryRepository(ctrl)
		uc := NewEvaluationUseCase(apps, subs, history, nil, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		history.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.EvaluationHistoryEntry{})).DoAndReturn(
			func(_ context.Context, e entities.EvaluationHistoryEntry) (entities.EvaluationHistoryEntry, error) {
				if e.Provider != "simulated" || e.ResultStatus != entities.StatusInReview {
					t.Fatalf("unexpected history entry: %+v", e)
				}
				if e.Score < 300 || e.Score > 850 {
					t.Fatalf("score out of range: %d", e.Score)
				}
				return e, nil
			},
		)
		apps.EXPECT().RecordDecision(gomock.Any(), "app-1", entities.StatusPendingAnalysis, gomock.AssignableToTypeOf(interfaces.DecisionUpdate{})).DoAndReturn(
			func(_ context.Context, id string, from entities.Status, upd interfaces.DecisionUpdate) (entities.Application, error) {
				if upd.Status != entities.StatusInReview {
					t.Fatalf("expected in_review, got %s", upd.Status)
				}
				updated := pending
				updated.Status = upd.Status
				updated.CreditScore = upd.Score
				return updated, nil
			},
		)

		app, err := uc.Evaluate(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.StatusInReview {
			t.Fatalf("expected in_review, got %s", app.Status)
		}
	})

	t.Run("external failure falls back and never surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		subs := mock_interfaces.NewMockISubRecordRepository(ctrl)
		history := mock_interfaces.NewMockIEvaluationHistoryRepository(ctrl)
		external := mock_interfaces.NewMockIEvaluationStrategy(ctrl)
		uc := NewEvaluationUseCase(apps, subs, history, external, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		external.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(interfaces.EvaluationResult{}, errors.New("bureau unreachable"))
		external.EXPECT().Name().Return("kiban").AnyTimes()

		var entries []entities.EvaluationHistoryEntry
		history.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.EvaluationHistoryEntry{})).DoAndReturn(
			func(_ context.Context, e entities.EvaluationHistoryEntry) (entities.EvaluationHistoryEntry, error) {
				entries = append(entries, e)
				return e, nil
			},
		).Times(2)
		apps.EXPECT().RecordDecision(gomock.Any(), "app-1", entities.StatusPendingAnalysis, gomock.AssignableToTypeOf(interfaces.DecisionUpdate{})).DoAndReturn(
			func(_ context.Context, id string, from entities.Status, upd interfaces.DecisionUpdate) (entities.Application, error) {
				if upd.Provider != "fallback-kiban" {
					t.Fatalf("expected fallback provider tag, got %q", upd.Provider)
				}
				if upd.Status != entities.StatusInReview {
					t.Fatalf("fallback must route to review, got %s", upd.Status)
				}
				updated := pending
				updated.Status = upd.Status
				updated.Provider = upd.Provider
				return updated, nil
			},
		)

		app, err := uc.Evaluate(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("fallback must not surface the provider error, got %v", err)
		}
		if app.Provider != "fallback-kiban" {
			t.Fatalf("expected fallback-tagged decision, got %q", app.Provider)
		}

		if len(entries) != 2 {
			t.Fatalf("expected failed attempt plus fallback in history, got %d entries", len(entries))
		}
		if entries[0].Provider != "kiban" || entries[0].ResultStatus != "" {
			t.Fatalf("first entry should record the failed external attempt: %+v", entries[0])
		}
		if !strings.Contains(string(entries[0].Response.Payload), "bureau unreachable") {
			t.Fatalf("failed attempt must keep the original error: %s", entries[0].Response.Payload)
		}
		if entries[1].Provider != "fallback-kiban" {
			t.Fatalf("second entry should carry the fallback tag: %+v", entries[1])
		}
		if !strings.Contains(string(entries[1].Response.Payload), "fallback_from") {
			t.Fatalf("fallback payload must embed its origin: %s", entries[1].Response.Payload)
		}
	})

	t.Run("losing the decision race returns the winner decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		subs := mock_interfaces.NewMockISubRecordRepository(ctrl)
		history := mock_interfaces.NewMockIEvaluationHistoryRepository(ctrl)
		uc := NewEvaluationUseCase(apps, subs, history, nil, NewSimulatedEvaluationStrategy(zap.NewNop()), zap.NewNop())

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.EvaluationHistoryEntry) (entities.EvaluationHistoryEntry, error) {
				return e, nil
			},
		)
		apps.EXPECT().RecordDecision(gomock.Any(), "app-1", entities.StatusPendingAnalysis, gomock.Any()).Return(entities.Application{}, interfaces.ErrConditionalCheckFailed)

		winner := pending
		winner.Status = entities.StatusApproved
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(winner, nil)

		app, err := uc.Evaluate(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.StatusApproved {
			t.Fatalf("expected winner decision, got %s", app.Status)
		}
	})
}

func TestExternalEvaluationStrategy_CutoffMapping(t *testing.T) {
	input := interfaces.EvaluationInput{
		Application: entities.Application{ID: "app-1"},
		Profile:     entities.Profile{FirstName: "Ana", LastName: "Silva"},
		Equipment:   entities.Equipment{Price: 120000, DownPayment: 20000, RequestedTermMonths: 24},
	}

	build := func(ctrl *gomock.Controller, score int) *ExternalEvaluationStrategy {
		provider := mock_interfaces.NewMockIBureauProvider(ctrl)
		provider.EXPECT().Name().Return("kiban").AnyTimes()
		provider.EXPECT().QueryBureau(gomock.Any(), gomock.Any()).Return(interfaces.BureauReport{
			Provider: "kiban", RequestID: "req-1", Score: score, ScoreName: "FICO",
		}, nil)
		return NewExternalEvaluationStrategy(provider, RetryPolicy{MaxAttempts: 1}, 0, 700, 550, 0.15, zap.NewNop())
	}

	t.Run("score at approve cutoff approves with terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		res, err := build(ctrl, 700).Evaluate(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
		if res.ApprovedAmount != 100000 || res.ApprovedTermMonths != 24 {
			t.Fatalf("expected financed amount and term, got %+v", res)
		}
		if res.MonthlyPayment != MonthlyPayment(100000, 24, 0.15) {
			t.Fatalf("monthly payment mismatch: %v", res.MonthlyPayment)
		}
	})

	t.Run("mid score routes to review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		res, err := build(ctrl, 600).Evaluate(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusInReview {
			t.Fatalf("expected in_review, got %s", res.Status)
		}
	})

	t.Run("low score rejects with insufficient_score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		res, err := build(ctrl, 400).Evaluate(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusRejected {
			t.Fatalf("expected rejected, got %s", res.Status)
		}
		if res.RejectionReason != string(entities.ReasonInsufficientScore) {
			t.Fatalf("expected insufficient_score, got %q", res.RejectionReason)
		}
	})

	t.Run("retries transient provider failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIBureauProvider(ctrl)
		provider.EXPECT().Name().Return("kiban").AnyTimes()
		gomock.InOrder(
			provider.EXPECT().QueryBureau(gomock.Any(), gomock.Any()).Return(interfaces.BureauReport{}, errors.New("timeout")),
			provider.EXPECT().QueryBureau(gomock.Any(), gomock.Any()).Return(interfaces.BureauReport{Score: 720, Provider: "kiban"}, nil),
		)
		s := NewExternalEvaluationStrategy(provider, RetryPolicy{MaxAttempts: 3}, 0, 700, 550, 0.15, zap.NewNop())

		res, err := s.Evaluate(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("expected approved after retry, got %s", res.Status)
		}
	})

	t.Run("exhausted retries surface the provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIBureauProvider(ctrl)
		provider.EXPECT().Name().Return("kiban").AnyTimes()
		provider.EXPECT().QueryBureau(gomock.Any(), gomock.Any()).Return(interfaces.BureauReport{}, errors.New("down")).Times(2)
		s := NewExternalEvaluationStrategy(provider, RetryPolicy{MaxAttempts: 2}, 0, 700, 550, 0.15, zap.NewNop())

		if _, err := s.Evaluate(context.Background(), input); err == nil {
			t.Fatalf("expected error after exhausting retries")
		}
	})
}
