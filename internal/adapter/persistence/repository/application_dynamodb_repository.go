package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "applications"
	applicationsUserIDIndex      = "user_id-index"
)

type applicationItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
	Status string `dynamodbav:"status"`

	ProfileID   string `dynamodbav:"profile_id,omitempty"`
	ContactID   string `dynamodbav:"contact_id,omitempty"`
	FinancialID string `dynamodbav:"financial_id,omitempty"`
	EquipmentID string `dynamodbav:"equipment_id,omitempty"`

	TermsAccepted         bool `dynamodbav:"terms_accepted"`
	CreditCheckAuthorized bool `dynamodbav:"credit_check_authorized"`

	OTPRequestID string `dynamodbav:"otp_request_id,omitempty"`
	OTPValidated bool   `dynamodbav:"otp_validated"`

	CreditScore         int    `dynamodbav:"credit_score,omitempty"`
	ApprovedAmount      string `dynamodbav:"approved_amount,omitempty"`
	ApprovedTermMonths  int    `dynamodbav:"approved_term_months,omitempty"`
	MonthlyPayment      string `dynamodbav:"monthly_payment,omitempty"`
	RejectionReason     string `dynamodbav:"rejection_reason,omitempty"`
	Provider            string `dynamodbav:"provider,omitempty"`
	ProviderRequestID   string `dynamodbav:"provider_request_id,omitempty"`
	ProviderResponseRaw string `dynamodbav:"provider_response_raw,omitempty"`

	AnalystID           string `dynamodbav:"analyst_id,omitempty"`
	AssignedAt          string `dynamodbav:"assigned_at,omitempty"`
	AnalysisStartedAt   string `dynamodbav:"analysis_started_at,omitempty"`
	AnalysisCompletedAt string `dynamodbav:"analysis_completed_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ApplicationDynamoRepository persists Application aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Every mutation past Create is an UpdateItem with a ConditionExpression on
// the expected current status (and owner where relevant). A failed condition
// surfaces as interfaces.ErrConditionalCheckFailed so usecases can report a
// conflict instead of silently losing a race.

type ApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb *dynamodb.Client) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
	}
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, app entities.Application) (entities.Application, error) {
	it := toApplicationItem(app)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) GetActiveByUserID(ctx context.Context, userID string) (entities.Application, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(applicationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Application{}, err
	}

	for _, raw := range out.Items {
		var it applicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Application{}, err
		}
		app := fromApplicationItem(it)
		if !app.Status.Terminal() {
			return app, nil
		}
	}
	return entities.Application{}, nil
}

func (r *ApplicationDynamoRepository) SetSubRecordRef(ctx context.Context, id string, kind interfaces.SubRecordKind, refID string) (entities.Application, error) {
	var field string
	switch kind {
	case interfaces.SubRecordProfile:
		field = "profile_id"
	case interfaces.SubRecordContact:
		field = "contact_id"
	case interfaces.SubRecordFinancial:
		field = "financial_id"
	case interfaces.SubRecordEquipment:
		field = "equipment_id"
	default:
		return entities.Application{}, fmt.Errorf("unknown sub-record kind %q", kind)
	}

	return r.update(ctx, id,
		"SET #ref = :ref, #updated_at = :updated_at",
		"#status = :expected",
		map[string]types.AttributeValue{
			":ref":      &types.AttributeValueMemberS{Value: refID},
			":expected": &types.AttributeValueMemberS{Value: string(entities.StatusIncomplete)},
		},
		map[string]string{"#ref": field, "#status": "status"},
	)
}

func (r *ApplicationDynamoRepository) Finish(ctx context.Context, id, otpRequestID string) (entities.Application, error) {
	return r.update(ctx, id,
		"SET #status = :to, #terms = :yes, #check = :yes, #otp = :otp, #updated_at = :updated_at",
		"#status = :from",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(entities.StatusPendingNIP)},
			":from": &types.AttributeValueMemberS{Value: string(entities.StatusIncomplete)},
			":yes":  &types.AttributeValueMemberBOOL{Value: true},
			":otp":  &types.AttributeValueMemberS{Value: otpRequestID},
		},
		map[string]string{
			"#status": "status",
			"#terms":  "terms_accepted",
			"#check":  "credit_check_authorized",
			"#otp":    "otp_request_id",
		},
	)
}

func (r *ApplicationDynamoRepository) ReplaceOTPRequest(ctx context.Context, id, otpRequestID string) (entities.Application, error) {
	return r.update(ctx, id,
		"SET #otp = :otp, #updated_at = :updated_at",
		"#status = :expected",
		map[string]types.AttributeValue{
			":otp":      &types.AttributeValueMemberS{Value: otpRequestID},
			":expected": &types.AttributeValueMemberS{Value: string(entities.StatusPendingNIP)},
		},
		map[string]string{"#otp": "otp_request_id", "#status": "status"},
	)
}

func (r *ApplicationDynamoRepository) MarkOTPValidated(ctx context.Context, id, otpRequestID string) (entities.Application, error) {
	// Fenced on the exact request id: a validate racing a resend fails closed.
	return r.update(ctx, id,
		"SET #status = :to, #validated = :yes, #updated_at = :updated_at",
		"#status = :from AND #otp = :otp",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(entities.StatusPendingAnalysis)},
			":from": &types.AttributeValueMemberS{Value: string(entities.StatusPendingNIP)},
			":otp":  &types.AttributeValueMemberS{Value: otpRequestID},
			":yes":  &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{
			"#status":    "status",
			"#otp":       "otp_request_id",
			"#validated": "otp_validated",
		},
	)
}

func (r *ApplicationDynamoRepository) RecordDecision(ctx context.Context, id string, from entities.Status, upd interfaces.DecisionUpdate) (entities.Application, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(upd.Status)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	names := map[string]string{"#status": "status"}

	if upd.Score != 0 {
		expr += ", #score = :score"
		values[":score"] = &types.AttributeValueMemberN{Value: strconv.Itoa(upd.Score)}
		names["#score"] = "credit_score"
	}
	if upd.Provider != "" {
		expr += ", #provider = :provider"
		values[":provider"] = &types.AttributeValueMemberS{Value: upd.Provider}
		names["#provider"] = "provider"
	}
	if upd.ProviderRequestID != "" {
		expr += ", #preq = :preq"
		values[":preq"] = &types.AttributeValueMemberS{Value: upd.ProviderRequestID}
		names["#preq"] = "provider_request_id"
	}
	if upd.Response.Provider != "" {
		raw, err := json.Marshal(upd.Response)
		if err != nil {
			return entities.Application{}, err
		}
		expr += ", #presp = :presp"
		values[":presp"] = &types.AttributeValueMemberS{Value: string(raw)}
		names["#presp"] = "provider_response_raw"
	}
	if upd.ApprovedAmount != 0 {
		expr += ", #amount = :amount"
		values[":amount"] = &types.AttributeValueMemberS{Value: floatToString(upd.ApprovedAmount)}
		names["#amount"] = "approved_amount"
	}
	if upd.ApprovedTermMonths != 0 {
		expr += ", #term = :term"
		values[":term"] = &types.AttributeValueMemberN{Value: strconv.Itoa(upd.ApprovedTermMonths)}
		names["#term"] = "approved_term_months"
	}
	if upd.MonthlyPayment != 0 {
		expr += ", #monthly = :monthly"
		values[":monthly"] = &types.AttributeValueMemberS{Value: floatToString(upd.MonthlyPayment)}
		names["#monthly"] = "monthly_payment"
	}
	if upd.RejectionReason != "" {
		expr += ", #reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: upd.RejectionReason}
		names["#reason"] = "rejection_reason"
	}
	if upd.CompletedAt != nil {
		expr += ", #completed = :completed"
		values[":completed"] = &types.AttributeValueMemberS{Value: upd.CompletedAt.UTC().Format(time.RFC3339Nano)}
		names["#completed"] = "analysis_completed_at"
	}

	return r.update(ctx, id, expr, "#status = :from", values, names)
}

func (r *ApplicationDynamoRepository) Assign(ctx context.Context, id, analystID string) (entities.Application, error) {
	return r.update(ctx, id,
		"SET #analyst = :analyst, #assigned_at = :now, #updated_at = :updated_at",
		"#status = :expected AND attribute_not_exists(#analyst)",
		map[string]types.AttributeValue{
			":analyst":  &types.AttributeValueMemberS{Value: analystID},
			":now":      &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":expected": &types.AttributeValueMemberS{Value: string(entities.StatusInReview)},
		},
		map[string]string{
			"#analyst":     "analyst_id",
			"#assigned_at": "assigned_at",
			"#status":      "status",
		},
	)
}

func (r *ApplicationDynamoRepository) StartAnalysis(ctx context.Context, id string) (entities.Application, error) {
	return r.update(ctx, id,
		"SET #started_at = :now, #updated_at = :updated_at",
		"#status = :expected AND attribute_exists(#analyst) AND attribute_not_exists(#started_at)",
		map[string]types.AttributeValue{
			":now":      &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":expected": &types.AttributeValueMemberS{Value: string(entities.StatusInReview)},
		},
		map[string]string{
			"#started_at": "analysis_started_at",
			"#analyst":    "analyst_id",
			"#status":     "status",
		},
	)
}

func (r *ApplicationDynamoRepository) Repair(ctx context.Context, id string) (entities.Application, error) {
	// The only sanctioned backward transition.
	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"#status = :from AND attribute_not_exists(#otp)",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(entities.StatusIncomplete)},
			":from": &types.AttributeValueMemberS{Value: string(entities.StatusPendingNIP)},
		},
		map[string]string{"#status": "status", "#otp": "otp_request_id"},
	)
}

func (r *ApplicationDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	condExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Application, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND (" + condExpr + ")"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Application{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.Application{}, err
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

func toApplicationItem(a entities.Application) applicationItem {
	it := applicationItem{
		ID:                    a.ID,
		UserID:                a.UserID,
		Status:                string(a.Status),
		ProfileID:             a.ProfileID,
		ContactID:             a.ContactID,
		FinancialID:           a.FinancialID,
		EquipmentID:           a.EquipmentID,
		TermsAccepted:         a.TermsAccepted,
		CreditCheckAuthorized: a.CreditCheckAuthorized,
		OTPRequestID:          a.OTPRequestID,
		OTPValidated:          a.OTPValidated,
		CreditScore:           a.CreditScore,
		ApprovedTermMonths:    a.ApprovedTermMonths,
		RejectionReason:       a.RejectionReason,
		Provider:              a.Provider,
		ProviderRequestID:     a.ProviderRequestID,
		AnalystID:             a.AnalystID,
		CreatedAt:             a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.ApprovedAmount != 0 {
		it.ApprovedAmount = floatToString(a.ApprovedAmount)
	}
	if a.MonthlyPayment != 0 {
		it.MonthlyPayment = floatToString(a.MonthlyPayment)
	}
	if a.ProviderResponse.Provider != "" {
		if raw, err := json.Marshal(a.ProviderResponse); err == nil {
			it.ProviderResponseRaw = string(raw)
		}
	}
	if a.AssignedAt != nil {
		it.AssignedAt = a.AssignedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.AnalysisStartedAt != nil {
		it.AnalysisStartedAt = a.AnalysisStartedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.AnalysisCompletedAt != nil {
		it.AnalysisCompletedAt = a.AnalysisCompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromApplicationItem(it applicationItem) entities.Application {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	approvedAmount, _ := strconv.ParseFloat(it.ApprovedAmount, 64)
	monthlyPayment, _ := strconv.ParseFloat(it.MonthlyPayment, 64)

	a := entities.Application{
		ID:                    it.ID,
		UserID:                it.UserID,
		Status:                entities.Status(it.Status),
		ProfileID:             it.ProfileID,
		ContactID:             it.ContactID,
		FinancialID:           it.FinancialID,
		EquipmentID:           it.EquipmentID,
		TermsAccepted:         it.TermsAccepted,
		CreditCheckAuthorized: it.CreditCheckAuthorized,
		OTPRequestID:          it.OTPRequestID,
		OTPValidated:          it.OTPValidated,
		CreditScore:           it.CreditScore,
		ApprovedAmount:        approvedAmount,
		ApprovedTermMonths:    it.ApprovedTermMonths,
		MonthlyPayment:        monthlyPayment,
		RejectionReason:       it.RejectionReason,
		Provider:              it.Provider,
		ProviderRequestID:     it.ProviderRequestID,
		AnalystID:             it.AnalystID,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.ProviderResponseRaw != "" {
		var payload entities.ProviderPayload
		if err := json.Unmarshal([]byte(it.ProviderResponseRaw), &payload); err == nil {
			a.ProviderResponse = payload
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, it.AssignedAt); err == nil && it.AssignedAt != "" {
		a.AssignedAt = &t
	}
	if t, err := time.Parse(time.RFC3339Nano, it.AnalysisStartedAt); err == nil && it.AnalysisStartedAt != "" {
		a.AnalysisStartedAt = &t
	}
	if t, err := time.Parse(time.RFC3339Nano, it.AnalysisCompletedAt); err == nil && it.AnalysisCompletedAt != "" {
		a.AnalysisCompletedAt = &t
	}
	return a
}
