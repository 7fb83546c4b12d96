package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"
	mock_interfaces "credimaq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// stubEvaluator satisfies IEvaluationUseCase without dragging the evaluation
// wiring into pipeline tests.
type stubEvaluator struct {
	app   entities.Application
	err   error
	calls int
}

func (s *stubEvaluator) Evaluate(_ context.Context, _ string) (entities.Application, error) {
	s.calls++
	return s.app, s.err
}

func newApplicationUseCaseForTest(t *testing.T, ctrl *gomock.Controller, evaluator IEvaluationUseCase) (*ApplicationUseCase, *mock_interfaces.MockIApplicationRepository, *mock_interfaces.MockISubRecordRepository, *mock_interfaces.MockIBureauProvider, *mock_interfaces.MockIActivityRepository) {
	t.Helper()
	apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
	subs := mock_interfaces.NewMockISubRecordRepository(ctrl)
	provider := mock_interfaces.NewMockIBureauProvider(ctrl)
	activity := mock_interfaces.NewMockIActivityRepository(ctrl)
	uc := NewApplicationUseCase(apps, subs, provider, evaluator, activity, zap.NewNop())
	return uc, apps, subs, provider, activity
}

func TestApplicationUseCase_CreateApplication(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		_, err := uc.CreateApplication(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("one active application per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetActiveByUserID(gomock.Any(), "user-1").Return(entities.Application{ID: "existing"}, nil)

		_, err := uc.CreateApplication(context.Background(), "user-1")
		if !errors.Is(err, ErrActiveApplicationExists) {
			t.Fatalf("expected ErrActiveApplicationExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetActiveByUserID(gomock.Any(), "user-1").Return(entities.Application{}, nil)
		apps.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Application{})).DoAndReturn(
			func(_ context.Context, a entities.Application) (entities.Application, error) {
				if a.ID == "" || a.UserID != "user-1" || a.Status != entities.StatusIncomplete {
					t.Fatalf("unexpected application: %+v", a)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		app, err := uc.CreateApplication(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.StatusIncomplete {
			t.Fatalf("expected incomplete, got %s", app.Status)
		}
	})
}

func TestApplicationUseCase_SubmitStep(t *testing.T) {
	base := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusIncomplete}

	t.Run("not owner reads as not found upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)

		_, err := uc.SubmitStep(context.Background(), "someone-else", "app-1", 1, json.RawMessage(`{}`))
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("not editable after finish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		locked := base
		locked.Status = entities.StatusPendingNIP
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(locked, nil)

		_, err := uc.SubmitStep(context.Background(), "user-1", "app-1", 1, json.RawMessage(`{"first_name":"Ana","last_name":"Silva"}`))
		if !errors.Is(err, ErrApplicationNotEditable) {
			t.Fatalf("expected ErrApplicationNotEditable, got %v", err)
		}
	})

	t.Run("unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)

		_, err := uc.SubmitStep(context.Background(), "user-1", "app-1", 7, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("profile step missing names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)

		_, err := uc.SubmitStep(context.Background(), "user-1", "app-1", 1, json.RawMessage(`{"first_name":"  "}`))
		if !errors.Is(err, ErrInvalidStepPayload) {
			t.Fatalf("expected ErrInvalidStepPayload, got %v", err)
		}
	})

	t.Run("equipment step links the sub-record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, subs, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)
		subs.EXPECT().PutEquipment(gomock.Any(), gomock.AssignableToTypeOf(entities.Equipment{})).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				if e.ID == "" || e.UserID != "user-1" || e.Price != 150000 {
					t.Fatalf("unexpected equipment: %+v", e)
				}
				return e, nil
			},
		)
		apps.EXPECT().SetSubRecordRef(gomock.Any(), "app-1", interfaces.SubRecordEquipment, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ interfaces.SubRecordKind, refID string) (entities.Application, error) {
				updated := base
				updated.EquipmentID = refID
				return updated, nil
			},
		)

		app, err := uc.SubmitStep(context.Background(), "user-1", "app-1", 4,
			json.RawMessage(`{"description":"tractor","price":150000,"down_payment":20000,"requested_term_months":24}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.EquipmentID == "" {
			t.Fatalf("expected equipment id to be set")
		}
	})
}

func TestApplicationUseCase_FinishApplication(t *testing.T) {
	ready := entities.Application{
		ID: "app-1", UserID: "user-1", Status: entities.StatusIncomplete,
		ProfileID: "p-1", ContactID: "c-1", FinancialID: "f-1", EquipmentID: "e-1",
	}

	t.Run("missing sub-records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		partial := ready
		partial.EquipmentID = ""
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(partial, nil)

		_, err := uc.FinishApplication(context.Background(), "user-1", "app-1", true, true)
		if !errors.Is(err, ErrMissingSubRecords) {
			t.Fatalf("expected ErrMissingSubRecords, got %v", err)
		}
	})

	t.Run("consents required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(ready, nil)

		_, err := uc.FinishApplication(context.Background(), "user-1", "app-1", true, false)
		if !errors.Is(err, ErrConsentsRequired) {
			t.Fatalf("expected ErrConsentsRequired, got %v", err)
		}
	})

	t.Run("sends nip and advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, subs, provider, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(ready, nil)
		subs.EXPECT().GetContact(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1", Phone: "5512345678", CountryCode: "+52"}, nil)
		provider.EXPECT().SendOTP(gomock.Any(), "5512345678", "+52").Return("otp-req-1", nil)
		apps.EXPECT().Finish(gomock.Any(), "app-1", "otp-req-1").DoAndReturn(
			func(_ context.Context, id, otpRequestID string) (entities.Application, error) {
				updated := ready
				updated.Status = entities.StatusPendingNIP
				updated.OTPRequestID = otpRequestID
				return updated, nil
			},
		)

		res, err := uc.FinishApplication(context.Background(), "user-1", "app-1", true, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Resumed {
			t.Fatalf("expected a fresh finish, not a resume")
		}
		if res.Application.Status != entities.StatusPendingNIP || res.Application.OTPRequestID != "otp-req-1" {
			t.Fatalf("unexpected result: %+v", res.Application)
		}
	})

	t.Run("finish is idempotent past incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		advanced := ready
		advanced.Status = entities.StatusPendingNIP
		advanced.OTPRequestID = "otp-req-1"
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(advanced, nil)
		// No SendOTP, no Finish: the existing request id stays in place.

		res, err := uc.FinishApplication(context.Background(), "user-1", "app-1", true, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resumed {
			t.Fatalf("expected resume")
		}
		if res.Application.OTPRequestID != "otp-req-1" {
			t.Fatalf("expected existing otp request id, got %q", res.Application.OTPRequestID)
		}
	})

	t.Run("losing the finish race resumes with the winner state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, subs, provider, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(ready, nil)
		subs.EXPECT().GetContact(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1", Phone: "5512345678", CountryCode: "+52"}, nil)
		provider.EXPECT().SendOTP(gomock.Any(), "5512345678", "+52").Return("otp-req-2", nil)
		apps.EXPECT().Finish(gomock.Any(), "app-1", "otp-req-2").Return(entities.Application{}, interfaces.ErrConditionalCheckFailed)

		winner := ready
		winner.Status = entities.StatusPendingNIP
		winner.OTPRequestID = "otp-req-1"
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(winner, nil)

		res, err := uc.FinishApplication(context.Background(), "user-1", "app-1", true, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resumed || res.Application.OTPRequestID != "otp-req-1" {
			t.Fatalf("expected resume with winner state, got %+v", res)
		}
	})
}

func TestApplicationUseCase_ResendCode(t *testing.T) {
	t.Run("only while awaiting the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusIncomplete}, nil)

		_, err := uc.ResendCode(context.Background(), "user-1", "app-1")
		if !errors.Is(err, ErrNotAwaitingCode) {
			t.Fatalf("expected ErrNotAwaitingCode, got %v", err)
		}
	})

	t.Run("supersedes the pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, subs, provider, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		pending := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP, ContactID: "c-1", OTPRequestID: "otp-old"}
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		subs.EXPECT().GetContact(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1", Phone: "5512345678", CountryCode: "+52"}, nil)
		provider.EXPECT().SendOTP(gomock.Any(), "5512345678", "+52").Return("otp-new", nil)
		apps.EXPECT().ReplaceOTPRequest(gomock.Any(), "app-1", "otp-new").DoAndReturn(
			func(_ context.Context, id, otpRequestID string) (entities.Application, error) {
				updated := pending
				updated.OTPRequestID = otpRequestID
				return updated, nil
			},
		)

		app, err := uc.ResendCode(context.Background(), "user-1", "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.OTPRequestID != "otp-new" {
			t.Fatalf("expected superseded request id, got %q", app.OTPRequestID)
		}
	})

	t.Run("concurrent state change is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, subs, provider, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		pending := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP, ContactID: "c-1", OTPRequestID: "otp-old"}
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		subs.EXPECT().GetContact(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1", Phone: "5512345678", CountryCode: "+52"}, nil)
		provider.EXPECT().SendOTP(gomock.Any(), "5512345678", "+52").Return("otp-new", nil)
		apps.EXPECT().ReplaceOTPRequest(gomock.Any(), "app-1", "otp-new").Return(entities.Application{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.ResendCode(context.Background(), "user-1", "app-1")
		if !errors.Is(err, ErrNotAwaitingCode) {
			t.Fatalf("expected ErrNotAwaitingCode, got %v", err)
		}
	})
}

func TestApplicationUseCase_ValidateCode(t *testing.T) {
	pending := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP, OTPRequestID: "otp-req-1"}

	t.Run("code format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		for _, code := range []string{"", "12345", "1234567", "12a456", "12 456"} {
			if _, err := uc.ValidateCode(context.Background(), "user-1", "app-1", code); !errors.Is(err, ErrInvalidCode) {
				t.Fatalf("code %q: expected ErrInvalidCode, got %v", code, err)
			}
		}
	})

	t.Run("missing request id needs repair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		stuck := pending
		stuck.OTPRequestID = ""
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(stuck, nil)

		_, err := uc.ValidateCode(context.Background(), "user-1", "app-1", "123456")
		if !errors.Is(err, ErrOTPRequestMissing) {
			t.Fatalf("expected ErrOTPRequestMissing, got %v", err)
		}
	})

	t.Run("rejected code does not burn the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		evaluator := &stubEvaluator{}
		uc, apps, _, provider, _ := newApplicationUseCaseForTest(t, ctrl, evaluator)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		provider.EXPECT().ValidateOTP(gomock.Any(), "otp-req-1", "123456").Return(false, nil)

		_, err := uc.ValidateCode(context.Background(), "user-1", "app-1", "123456")
		if !errors.Is(err, ErrCodeRejected) {
			t.Fatalf("expected ErrCodeRejected, got %v", err)
		}
		if evaluator.calls != 0 {
			t.Fatalf("evaluation must not run on a rejected code")
		}
	})

	t.Run("provider error surfaces untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, provider, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		cause := errors.New("provider down")
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		provider.EXPECT().ValidateOTP(gomock.Any(), "otp-req-1", "123456").Return(false, cause)

		_, err := uc.ValidateCode(context.Background(), "user-1", "app-1", "123456")
		if !errors.Is(err, cause) {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("valid code advances and triggers evaluation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		decided := pending
		decided.Status = entities.StatusInReview
		evaluator := &stubEvaluator{app: decided}
		uc, apps, _, provider, activity := newApplicationUseCaseForTest(t, ctrl, evaluator)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		provider.EXPECT().ValidateOTP(gomock.Any(), "otp-req-1", "123456").Return(true, nil)
		apps.EXPECT().MarkOTPValidated(gomock.Any(), "app-1", "otp-req-1").Return(pending, nil)
		activity.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityEntry{})).DoAndReturn(
			func(_ context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error) {
				if e.Action != entities.ActionNIPValidated || e.ApplicationID != "app-1" {
					t.Fatalf("unexpected activity entry: %+v", e)
				}
				return e, nil
			},
		)

		app, err := uc.ValidateCode(context.Background(), "user-1", "app-1", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if evaluator.calls != 1 {
			t.Fatalf("expected one evaluation, got %d", evaluator.calls)
		}
		if app.Status != entities.StatusInReview {
			t.Fatalf("expected evaluated state, got %s", app.Status)
		}
	})

	t.Run("stale request id is a superseded conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		evaluator := &stubEvaluator{}
		uc, apps, _, provider, _ := newApplicationUseCaseForTest(t, ctrl, evaluator)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(pending, nil)
		provider.EXPECT().ValidateOTP(gomock.Any(), "otp-req-1", "123456").Return(true, nil)
		apps.EXPECT().MarkOTPValidated(gomock.Any(), "app-1", "otp-req-1").Return(entities.Application{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.ValidateCode(context.Background(), "user-1", "app-1", "123456")
		if !errors.Is(err, ErrRequestSuperseded) {
			t.Fatalf("expected ErrRequestSuperseded, got %v", err)
		}
		if evaluator.calls != 0 {
			t.Fatalf("a superseded validate must not evaluate, got %d calls", evaluator.calls)
		}
	})
}

func TestApplicationUseCase_RepairApplication(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		_, err := uc.RepairApplication(context.Background(), Actor{ID: "an-1", Role: entities.RoleAnalyst}, "app-1")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("only pending_nip without a request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, _ := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		healthy := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP, OTPRequestID: "otp-req-1"}
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(healthy, nil)

		_, err := uc.RepairApplication(context.Background(), Actor{ID: "adm-1", Role: entities.RoleAdmin}, "app-1")
		if !errors.Is(err, ErrRepairNotApplicable) {
			t.Fatalf("expected ErrRepairNotApplicable, got %v", err)
		}
	})

	t.Run("moves the stuck record back to incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, apps, _, _, activity := newApplicationUseCaseForTest(t, ctrl, &stubEvaluator{})

		stuck := entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP}
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(stuck, nil)
		apps.EXPECT().Repair(gomock.Any(), "app-1").DoAndReturn(
			func(_ context.Context, id string) (entities.Application, error) {
				repaired := stuck
				repaired.Status = entities.StatusIncomplete
				return repaired, nil
			},
		)
		activity.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityEntry{})).DoAndReturn(
			func(_ context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error) {
				if e.Action != entities.ActionRepaired || e.ActorRole != entities.RoleAdmin {
					t.Fatalf("unexpected activity entry: %+v", e)
				}
				return e, nil
			},
		)

		app, err := uc.RepairApplication(context.Background(), Actor{ID: "adm-1", Role: entities.RoleAdmin}, "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.StatusIncomplete {
			t.Fatalf("expected incomplete, got %s", app.Status)
		}
	})
}
