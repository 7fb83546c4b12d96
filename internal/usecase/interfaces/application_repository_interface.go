package interfaces

import (
	"context"
	"errors"
	"time"

	"credimaq/internal/domain/entities"
)

// ErrConditionalCheckFailed is returned by repositories when an optimistic
// guard did not hold at write time (status changed, owner already set, stale
// OTP request id). Usecases surface it as a conflict, never silently.
var ErrConditionalCheckFailed = errors.New("conditional check failed")

// SubRecordKind names the four application sub-records.

type SubRecordKind string

const (
	SubRecordProfile   SubRecordKind = "profile"
	SubRecordContact   SubRecordKind = "contact"
	SubRecordFinancial SubRecordKind = "financial"
	SubRecordEquipment SubRecordKind = "equipment"
)

// DecisionUpdate carries the fields written together with a decision-bearing
// status transition.

type DecisionUpdate struct {
	Status             entities.Status
	Score              int
	Provider           string
	ProviderRequestID  string
	Response           entities.ProviderPayload
	ApprovedAmount     float64
	ApprovedTermMonths int
	MonthlyPayment     float64
	RejectionReason    string
	CompletedAt        *time.Time
}

// IApplicationRepository abstracts DynamoDB persistence for Application.
//
// Every mutation below a plain Create is a conditional update keyed on the
// expected current status (and owner where relevant); a failed guard yields
// ErrConditionalCheckFailed. This is the only writer of the status field.

type IApplicationRepository interface {
	Create(ctx context.Context, app entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	// GetActiveByUserID returns the user's non-terminal application, or a
	// zero-value Application when none exists.
	GetActiveByUserID(ctx context.Context, userID string) (entities.Application, error)

	// SetSubRecordRef links a sub-record while the application is incomplete.
	SetSubRecordRef(ctx context.Context, id string, kind SubRecordKind, refID string) (entities.Application, error)

	// Finish performs incomplete -> pending_nip, recording consents and the
	// freshly issued OTP request id.
	Finish(ctx context.Context, id, otpRequestID string) (entities.Application, error)

	// ReplaceOTPRequest supersedes the pending OTP request id; the status must
	// still be pending_nip.
	ReplaceOTPRequest(ctx context.Context, id, otpRequestID string) (entities.Application, error)

	// MarkOTPValidated performs pending_nip -> pending_analysis, fenced on the
	// exact request id so a stale validate against a superseded request fails
	// closed.
	MarkOTPValidated(ctx context.Context, id, otpRequestID string) (entities.Application, error)

	// RecordDecision performs from -> upd.Status together with the decision
	// fields, guarded on the current status being from.
	RecordDecision(ctx context.Context, id string, from entities.Status, upd DecisionUpdate) (entities.Application, error)

	// Assign claims an unassigned in_review application. First writer wins;
	// the guard fails when analyst_id is already set.
	Assign(ctx context.Context, id, analystID string) (entities.Application, error)

	// StartAnalysis stamps analysis_started_at exactly once.
	StartAnalysis(ctx context.Context, id string) (entities.Application, error)

	// Repair performs the sanctioned backward transition pending_nip ->
	// incomplete for records stuck without an OTP request id.
	Repair(ctx context.Context, id string) (entities.Application, error)
}
