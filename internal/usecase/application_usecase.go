package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidApplicationID    = errors.New("invalid application id")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrNotOwner                = errors.New("application does not belong to caller")
	ErrActiveApplicationExists = errors.New("user already has an active application")
	ErrInvalidStep             = errors.New("invalid step number")
	ErrInvalidStepPayload      = errors.New("invalid step payload")
	ErrApplicationNotEditable  = errors.New("application is no longer editable")
	ErrMissingSubRecords       = errors.New("application is missing required steps")
	ErrConsentsRequired        = errors.New("terms and credit check consents are required")
	ErrNotAwaitingCode         = errors.New("application is not awaiting code validation")
	ErrInvalidCode             = errors.New("code must be 6 numeric digits")
	ErrCodeRejected            = errors.New("code was not validated")
	ErrOTPRequestMissing       = errors.New("no pending code request for this application")
	ErrRequestSuperseded       = errors.New("code request was superseded by a concurrent update")
	ErrRepairNotApplicable     = errors.New("application does not need repair")
)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Actor identifies the caller of an operation together with its role.

type Actor struct {
	ID   string
	Role entities.Role
}

// FinishResult tells the caller whether finish actually advanced the
// application or merely reported where to resume. When Resumed is true no
// new OTP was sent and no evaluation ran; the client continues at whatever
// step Application.Status indicates.

type FinishResult struct {
	Application entities.Application
	Resumed     bool
}

// IApplicationUseCase exposes the applicant-facing pipeline operations.

type IApplicationUseCase interface {
	CreateApplication(ctx context.Context, userID string) (entities.Application, error)
	GetApplication(ctx context.Context, userID, id string) (entities.Application, error)
	SubmitStep(ctx context.Context, userID, id string, step int, data json.RawMessage) (entities.Application, error)
	FinishApplication(ctx context.Context, userID, id string, termsAccepted, creditCheckAuthorized bool) (FinishResult, error)
	ResendCode(ctx context.Context, userID, id string) (entities.Application, error)
	ValidateCode(ctx context.Context, userID, id, code string) (entities.Application, error)
	RepairApplication(ctx context.Context, actor Actor, id string) (entities.Application, error)
}

type ApplicationUseCase struct {
	apps      interfaces.IApplicationRepository
	subs      interfaces.ISubRecordRepository
	provider  interfaces.IBureauProvider
	evaluator IEvaluationUseCase
	activity  interfaces.IActivityRepository
	logger    *zap.Logger
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(
	apps interfaces.IApplicationRepository,
	subs interfaces.ISubRecordRepository,
	provider interfaces.IBureauProvider,
	evaluator IEvaluationUseCase,
	activity interfaces.IActivityRepository,
	logger *zap.Logger,
) *ApplicationUseCase {
	return &ApplicationUseCase{apps: apps, subs: subs, provider: provider, evaluator: evaluator, activity: activity, logger: logger}
}

func (u *ApplicationUseCase) CreateApplication(ctx context.Context, userID string) (entities.Application, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Application{}, ErrInvalidUserID
	}

	// One active (non-terminal) application per user.
	if existing, err := u.apps.GetActiveByUserID(ctx, userID); err != nil {
		return entities.Application{}, err
	} else if existing.ID != "" {
		return entities.Application{}, ErrActiveApplicationExists
	}

	now := time.Now().UTC()
	app := entities.Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    entities.StatusIncomplete,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.apps.Create(ctx, app)
	if err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("application created",
		zap.String("operation", "create_application"),
		zap.String("application_id", created.ID),
		zap.String("user_id", userID))
	return created, nil
}

func (u *ApplicationUseCase) GetApplication(ctx context.Context, userID, id string) (entities.Application, error) {
	return u.loadOwned(ctx, userID, id)
}

func (u *ApplicationUseCase) SubmitStep(ctx context.Context, userID, id string, step int, data json.RawMessage) (entities.Application, error) {
	app, err := u.loadOwned(ctx, userID, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.StatusIncomplete {
		return entities.Application{}, ErrApplicationNotEditable
	}
	if len(data) == 0 || !json.Valid(data) {
		return entities.Application{}, ErrInvalidStepPayload
	}

	kind, refID, err := u.saveSubRecord(ctx, app, step, data)
	if err != nil {
		return entities.Application{}, err
	}

	updated, err := u.apps.SetSubRecordRef(ctx, app.ID, kind, refID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Application{}, ErrApplicationNotEditable
		}
		return entities.Application{}, err
	}
	u.logger.Info("step saved",
		zap.String("operation", "submit_step"),
		zap.String("application_id", app.ID),
		zap.Int("step", step),
		zap.String("sub_record", string(kind)))
	return updated, nil
}

func (u *ApplicationUseCase) saveSubRecord(ctx context.Context, app entities.Application, step int, data json.RawMessage) (interfaces.SubRecordKind, string, error) {
	now := time.Now().UTC()
	switch step {
	case 1:
		var p entities.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return "", "", ErrInvalidStepPayload
		}
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return "", "", ErrInvalidStepPayload
		}
		p.ID, p.UserID, p.CreatedAt = uuid.NewString(), app.UserID, now
		saved, err := u.subs.PutProfile(ctx, p)
		if err != nil {
			return "", "", err
		}
		return interfaces.SubRecordProfile, saved.ID, nil
	case 2:
		var c entities.Contact
		if err := json.Unmarshal(data, &c); err != nil {
			return "", "", ErrInvalidStepPayload
		}
		if strings.TrimSpace(c.Phone) == "" || strings.TrimSpace(c.CountryCode) == "" {
			return "", "", ErrInvalidStepPayload
		}
		c.ID, c.UserID, c.CreatedAt = uuid.NewString(), app.UserID, now
		saved, err := u.subs.PutContact(ctx, c)
		if err != nil {
			return "", "", err
		}
		return interfaces.SubRecordContact, saved.ID, nil
	case 3:
		var f entities.Financial
		if err := json.Unmarshal(data, &f); err != nil {
			return "", "", ErrInvalidStepPayload
		}
		if f.MonthlyIncome <= 0 {
			return "", "", ErrInvalidStepPayload
		}
		f.ID, f.UserID, f.CreatedAt = uuid.NewString(), app.UserID, now
		saved, err := u.subs.PutFinancial(ctx, f)
		if err != nil {
			return "", "", err
		}
		return interfaces.SubRecordFinancial, saved.ID, nil
	case 4:
		var e entities.Equipment
		if err := json.Unmarshal(data, &e); err != nil {
			return "", "", ErrInvalidStepPayload
		}
		if e.Price <= 0 || e.RequestedTermMonths <= 0 {
			return "", "", ErrInvalidStepPayload
		}
		e.ID, e.UserID, e.CreatedAt = uuid.NewString(), app.UserID, now
		saved, err := u.subs.PutEquipment(ctx, e)
		if err != nil {
			return "", "", err
		}
		return interfaces.SubRecordEquipment, saved.ID, nil
	default:
		return "", "", ErrInvalidStep
	}
}

// FinishApplication confirms step 5. On an incomplete application it checks
// the guards, sends the NIP and moves to pending_nip. On anything past
// incomplete it is a safe no-op: the current state is returned so the client
// resumes at the right step, the existing OTP request id stays in place and
// no evaluation is re-run.
func (u *ApplicationUseCase) FinishApplication(ctx context.Context, userID, id string, termsAccepted, creditCheckAuthorized bool) (FinishResult, error) {
	app, err := u.loadOwned(ctx, userID, id)
	if err != nil {
		return FinishResult{}, err
	}

	if app.Status != entities.StatusIncomplete {
		u.logger.Info("finish resumed at current state",
			zap.String("operation", "finish_application"),
			zap.String("application_id", app.ID),
			zap.String("status", string(app.Status)))
		return FinishResult{Application: app, Resumed: true}, nil
	}

	if !app.ReadyToFinish() {
		return FinishResult{}, ErrMissingSubRecords
	}
	if !termsAccepted || !creditCheckAuthorized {
		return FinishResult{}, ErrConsentsRequired
	}

	contact, err := u.subs.GetContact(ctx, app.ContactID)
	if err != nil {
		return FinishResult{}, err
	}
	if contact.ID == "" {
		return FinishResult{}, ErrMissingSubRecords
	}

	requestID, err := u.provider.SendOTP(ctx, contact.Phone, contact.CountryCode)
	if err != nil {
		return FinishResult{}, err
	}

	updated, err := u.apps.Finish(ctx, app.ID, requestID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// A concurrent finish won; report its state instead of ours.
			current, rerr := u.apps.GetByID(ctx, app.ID)
			if rerr != nil {
				return FinishResult{}, rerr
			}
			return FinishResult{Application: current, Resumed: true}, nil
		}
		return FinishResult{}, err
	}
	u.logger.Info("nip sent",
		zap.String("operation", "finish_application"),
		zap.String("application_id", app.ID),
		zap.String("otp_request_id", requestID))
	return FinishResult{Application: updated}, nil
}

// ResendCode rotates the pending NIP: the new request id supersedes the old
// one, so a validate against the superseded id fails closed.
func (u *ApplicationUseCase) ResendCode(ctx context.Context, userID, id string) (entities.Application, error) {
	app, err := u.loadOwned(ctx, userID, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.StatusPendingNIP {
		return entities.Application{}, ErrNotAwaitingCode
	}

	contact, err := u.subs.GetContact(ctx, app.ContactID)
	if err != nil {
		return entities.Application{}, err
	}
	if contact.ID == "" {
		return entities.Application{}, ErrMissingSubRecords
	}

	requestID, err := u.provider.SendOTP(ctx, contact.Phone, contact.CountryCode)
	if err != nil {
		return entities.Application{}, err
	}

	updated, err := u.apps.ReplaceOTPRequest(ctx, app.ID, requestID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// The application left pending_nip while we were sending.
			return entities.Application{}, ErrNotAwaitingCode
		}
		return entities.Application{}, err
	}
	u.logger.Info("nip resent",
		zap.String("operation", "resend_code"),
		zap.String("application_id", app.ID),
		zap.String("otp_request_id", requestID))
	return updated, nil
}

// ValidateCode runs the two-phase validation against the pending request and,
// on success, triggers the evaluation in the same business step. A rejected
// code does not burn the request: the caller may retry with the same request
// id or ask for a resend.
func (u *ApplicationUseCase) ValidateCode(ctx context.Context, userID, id, code string) (entities.Application, error) {
	if !codePattern.MatchString(code) {
		return entities.Application{}, ErrInvalidCode
	}

	app, err := u.loadOwned(ctx, userID, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.StatusPendingNIP {
		return entities.Application{}, ErrNotAwaitingCode
	}
	if app.OTPRequestID == "" {
		return entities.Application{}, ErrOTPRequestMissing
	}

	valid, err := u.provider.ValidateOTP(ctx, app.OTPRequestID, code)
	if err != nil {
		return entities.Application{}, err
	}
	if !valid {
		u.logger.Info("nip rejected",
			zap.String("operation", "validate_code"),
			zap.String("application_id", app.ID),
			zap.String("otp_request_id", app.OTPRequestID))
		return entities.Application{}, ErrCodeRejected
	}

	if _, err := u.apps.MarkOTPValidated(ctx, app.ID, app.OTPRequestID); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// A concurrent resend rotated the request id; this validate no
			// longer fences the code the provider accepted.
			return entities.Application{}, ErrRequestSuperseded
		}
		return entities.Application{}, err
	}

	if _, err := u.activity.Append(ctx, entities.ActivityEntry{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		ActorID:       userID,
		ActorRole:     entities.RoleApplicant,
		Action:        entities.ActionNIPValidated,
		Detail:        app.OTPRequestID,
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		return entities.Application{}, err
	}
	u.logger.Info("nip validated",
		zap.String("operation", "validate_code"),
		zap.String("application_id", app.ID))

	return u.evaluator.Evaluate(ctx, app.ID)
}

// RepairApplication is the operator-only backward path for records stuck in
// pending_nip without an OTP request id.
func (u *ApplicationUseCase) RepairApplication(ctx context.Context, actor Actor, id string) (entities.Application, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Application{}, ErrNotAuthorized
	}

	app, err := u.apps.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	if app.Status != entities.StatusPendingNIP || app.OTPRequestID != "" {
		return entities.Application{}, ErrRepairNotApplicable
	}

	updated, err := u.apps.Repair(ctx, app.ID)
	if err != nil {
		return entities.Application{}, err
	}
	if _, err := u.activity.Append(ctx, entities.ActivityEntry{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		Action:        entities.ActionRepaired,
		Detail:        "pending_nip without otp request id",
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		return entities.Application{}, err
	}
	u.logger.Warn("application repaired",
		zap.String("operation", "repair_application"),
		zap.String("application_id", app.ID),
		zap.String("actor_id", actor.ID))
	return updated, nil
}

func (u *ApplicationUseCase) loadOwned(ctx context.Context, userID, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Application{}, ErrInvalidUserID
	}

	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	if app.UserID != userID {
		return entities.Application{}, ErrNotOwner
	}
	return app, nil
}
