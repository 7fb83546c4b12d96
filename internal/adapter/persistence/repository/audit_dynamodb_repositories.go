package repository

import (
	"context"
	"encoding/json"
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
	defaultHistoryTableName   = "evaluation_history"
	defaultDecisionsTableName = "analyst_decisions"
	defaultActivityTableName  = "analyst_activity"
	applicationIDIndex        = "application_id-index"
)

// The three audit repositories share the same storage shape: PK id, GSI
// application_id-index, append with attribute_not_exists(id) and no update
// or delete paths. Rows are immutable once written.

type historyItem struct {
	ID            string `dynamodbav:"id"`
	ApplicationID string `dynamodbav:"application_id"`
	UserID        string `dynamodbav:"user_id"`
	Provider      string `dynamodbav:"provider"`
	Score         int    `dynamodbav:"score,omitempty"`
	ResultStatus  string `dynamodbav:"result_status,omitempty"`
	ResponseRaw   string `dynamodbav:"response_raw,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type decisionItem struct {
	ID             string `dynamodbav:"id"`
	ApplicationID  string `dynamodbav:"application_id"`
	AnalystID      string `dynamodbav:"analyst_id"`
	Type           string `dynamodbav:"type"`
	Amount         string `dynamodbav:"amount,omitempty"`
	TermMonths     int    `dynamodbav:"term_months,omitempty"`
	MonthlyPayment string `dynamodbav:"monthly_payment,omitempty"`
	Reason         string `dynamodbav:"reason,omitempty"`
	ReasonText     string `dynamodbav:"reason_text,omitempty"`
	Comment        string `dynamodbav:"comment,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type activityItem struct {
	ID            string `dynamodbav:"id"`
	ApplicationID string `dynamodbav:"application_id"`
	ActorID       string `dynamodbav:"actor_id"`
	ActorRole     string `dynamodbav:"actor_role"`
	Action        string `dynamodbav:"action"`
	Detail        string `dynamodbav:"detail,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

func appendItem(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func queryByApplicationID(ctx context.Context, ddb *dynamodb.Client, table, applicationID string) ([]map[string]types.AttributeValue, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(applicationIDIndex),
		KeyConditionExpression: aws.String("application_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: applicationID},
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// EvaluationHistoryDynamoRepository persists evaluation attempts.

type EvaluationHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEvaluationHistoryRepository = (*EvaluationHistoryDynamoRepository)(nil)

func NewEvaluationHistoryDynamoRepository(ddb *dynamodb.Client) *EvaluationHistoryDynamoRepository {
	return &EvaluationHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVALUATION_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *EvaluationHistoryDynamoRepository) Append(ctx context.Context, e entities.EvaluationHistoryEntry) (entities.EvaluationHistoryEntry, error) {
	it := historyItem{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		UserID:        e.UserID,
		Provider:      e.Provider,
		Score:         e.Score,
		ResultStatus:  string(e.ResultStatus),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.Response.Provider != "" {
		if raw, err := json.Marshal(e.Response); err == nil {
			it.ResponseRaw = string(raw)
		}
	}
	if err := appendItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.EvaluationHistoryEntry{}, err
	}
	return e, nil
}

func (r *EvaluationHistoryDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.EvaluationHistoryEntry, error) {
	items, err := queryByApplicationID(ctx, r.ddb, r.tableName, applicationID)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.EvaluationHistoryEntry, 0, len(items))
	for _, raw := range items {
		var it historyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		e := entities.EvaluationHistoryEntry{
			ID:            it.ID,
			ApplicationID: it.ApplicationID,
			UserID:        it.UserID,
			Provider:      it.Provider,
			Score:         it.Score,
			ResultStatus:  entities.Status(it.ResultStatus),
			CreatedAt:     createdAt,
		}
		if it.ResponseRaw != "" {
			var payload entities.ProviderPayload
			if err := json.Unmarshal([]byte(it.ResponseRaw), &payload); err == nil {
				e.Response = payload
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AnalystDecisionDynamoRepository persists immutable analyst verdicts.

type AnalystDecisionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnalystDecisionRepository = (*AnalystDecisionDynamoRepository)(nil)

func NewAnalystDecisionDynamoRepository(ddb *dynamodb.Client) *AnalystDecisionDynamoRepository {
	return &AnalystDecisionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ANALYST_DECISIONS_TABLE", defaultDecisionsTableName),
	}
}

func (r *AnalystDecisionDynamoRepository) Append(ctx context.Context, d entities.AnalystDecision) (entities.AnalystDecision, error) {
	it := decisionItem{
		ID:            d.ID,
		ApplicationID: d.ApplicationID,
		AnalystID:     d.AnalystID,
		Type:          string(d.Type),
		TermMonths:    d.TermMonths,
		Reason:        string(d.Reason),
		ReasonText:    d.ReasonText,
		Comment:       d.Comment,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.Amount != 0 {
		it.Amount = floatToString(d.Amount)
	}
	if d.MonthlyPayment != 0 {
		it.MonthlyPayment = floatToString(d.MonthlyPayment)
	}
	if err := appendItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.AnalystDecision{}, err
	}
	return d, nil
}

func (r *AnalystDecisionDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.AnalystDecision, error) {
	items, err := queryByApplicationID(ctx, r.ddb, r.tableName, applicationID)
	if err != nil {
		return nil, err
	}

	decisions := make([]entities.AnalystDecision, 0, len(items))
	for _, raw := range items {
		var it decisionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		amount, _ := strconv.ParseFloat(it.Amount, 64)
		monthly, _ := strconv.ParseFloat(it.MonthlyPayment, 64)
		decisions = append(decisions, entities.AnalystDecision{
			ID:             it.ID,
			ApplicationID:  it.ApplicationID,
			AnalystID:      it.AnalystID,
			Type:           entities.DecisionType(it.Type),
			Amount:         amount,
			TermMonths:     it.TermMonths,
			MonthlyPayment: monthly,
			Reason:         entities.RejectionReason(it.Reason),
			ReasonText:     it.ReasonText,
			Comment:        it.Comment,
			CreatedAt:      createdAt,
		})
	}
	return decisions, nil
}

// ActivityDynamoRepository persists the application activity trail.

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ANALYST_ACTIVITY_TABLE", defaultActivityTableName),
	}
}

func (r *ActivityDynamoRepository) Append(ctx context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error) {
	it := activityItem{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		ActorID:       e.ActorID,
		ActorRole:     string(e.ActorRole),
		Action:        e.Action,
		Detail:        e.Detail,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := appendItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ActivityEntry{}, err
	}
	return e, nil
}

func (r *ActivityDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.ActivityEntry, error) {
	items, err := queryByApplicationID(ctx, r.ddb, r.tableName, applicationID)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.ActivityEntry, 0, len(items))
	for _, raw := range items {
		var it activityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		entries = append(entries, entities.ActivityEntry{
			ID:            it.ID,
			ApplicationID: it.ApplicationID,
			ActorID:       it.ActorID,
			ActorRole:     entities.Role(it.ActorRole),
			Action:        it.Action,
			Detail:        it.Detail,
			CreatedAt:     createdAt,
		})
	}
	return entries, nil
}
