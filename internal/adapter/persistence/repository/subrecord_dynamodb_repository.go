package repository

import (
	"context"
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
	defaultProfilesTableName   = "application_profiles"
	defaultContactsTableName   = "application_contacts"
	defaultFinancialsTableName = "application_financials"
	defaultEquipmentTableName  = "application_equipment"
)

type profileItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	NationalID string `dynamodbav:"national_id,omitempty"`
	BirthDate  string `dynamodbav:"birth_date,omitempty"`
	Extra      string `dynamodbav:"extra,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type contactItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	Phone        string `dynamodbav:"phone"`
	CountryCode  string `dynamodbav:"country_code"`
	Email        string `dynamodbav:"email,omitempty"`
	Street       string `dynamodbav:"street,omitempty"`
	ExtNumber    string `dynamodbav:"ext_number,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty"`
	City         string `dynamodbav:"city,omitempty"`
	State        string `dynamodbav:"state,omitempty"`
	PostalCode   string `dynamodbav:"postal_code,omitempty"`
	Extra        string `dynamodbav:"extra,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

type financialItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	MonthlyIncome   string `dynamodbav:"monthly_income"`
	MonthlyExpenses string `dynamodbav:"monthly_expenses,omitempty"`
	Employment      string `dynamodbav:"employment,omitempty"`
	Extra           string `dynamodbav:"extra,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type equipmentItem struct {
	ID                  string `dynamodbav:"id"`
	UserID              string `dynamodbav:"user_id"`
	Description         string `dynamodbav:"description"`
	Price               string `dynamodbav:"price"`
	DownPayment         string `dynamodbav:"down_payment,omitempty"`
	RequestedTermMonths int    `dynamodbav:"requested_term_months"`
	Extra               string `dynamodbav:"extra,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// SubRecordDynamoRepository persists the four form sub-records, one table
// each, all keyed by id. Steps may be re-submitted while the application is
// incomplete, so writes are plain puts (the application row keeps the
// authoritative reference).

type SubRecordDynamoRepository struct {
	ddb             *dynamodb.Client
	profilesTable   string
	contactsTable   string
	financialsTable string
	equipmentTable  string
}

var _ interfaces.ISubRecordRepository = (*SubRecordDynamoRepository)(nil)

func NewSubRecordDynamoRepository(ddb *dynamodb.Client) *SubRecordDynamoRepository {
	return &SubRecordDynamoRepository{
		ddb:             ddb,
		profilesTable:   getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
		contactsTable:   getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
		financialsTable: getenvDefault("FINANCIALS_TABLE", defaultFinancialsTableName),
		equipmentTable:  getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *SubRecordDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func (r *SubRecordDynamoRepository) get(ctx context.Context, table, id string, out any) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (r *SubRecordDynamoRepository) PutProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	it := profileItem{
		ID:         p.ID,
		UserID:     p.UserID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		NationalID: p.NationalID,
		BirthDate:  p.BirthDate,
		Extra:      string(p.Extra),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := r.put(ctx, r.profilesTable, it); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *SubRecordDynamoRepository) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	var it profileItem
	found, err := r.get(ctx, r.profilesTable, id, &it)
	if err != nil || !found {
		return entities.Profile{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Profile{
		ID:         it.ID,
		UserID:     it.UserID,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		NationalID: it.NationalID,
		BirthDate:  it.BirthDate,
		Extra:      rawOrNil(it.Extra),
		CreatedAt:  createdAt,
	}, nil
}

func (r *SubRecordDynamoRepository) PutContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	it := contactItem{
		ID:           c.ID,
		UserID:       c.UserID,
		Phone:        c.Phone,
		CountryCode:  c.CountryCode,
		Email:        c.Email,
		Street:       c.Street,
		ExtNumber:    c.ExtNumber,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		Extra:        string(c.Extra),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := r.put(ctx, r.contactsTable, it); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *SubRecordDynamoRepository) GetContact(ctx context.Context, id string) (entities.Contact, error) {
	var it contactItem
	found, err := r.get(ctx, r.contactsTable, id, &it)
	if err != nil || !found {
		return entities.Contact{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Contact{
		ID:           it.ID,
		UserID:       it.UserID,
		Phone:        it.Phone,
		CountryCode:  it.CountryCode,
		Email:        it.Email,
		Street:       it.Street,
		ExtNumber:    it.ExtNumber,
		Neighborhood: it.Neighborhood,
		City:         it.City,
		State:        it.State,
		PostalCode:   it.PostalCode,
		Extra:        rawOrNil(it.Extra),
		CreatedAt:    createdAt,
	}, nil
}

func (r *SubRecordDynamoRepository) PutFinancial(ctx context.Context, f entities.Financial) (entities.Financial, error) {
	it := financialItem{
		ID:            f.ID,
		UserID:        f.UserID,
		MonthlyIncome: floatToString(f.MonthlyIncome),
		Employment:    f.Employment,
		Extra:         string(f.Extra),
		CreatedAt:     f.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if f.MonthlyExpenses != 0 {
		it.MonthlyExpenses = floatToString(f.MonthlyExpenses)
	}
	if err := r.put(ctx, r.financialsTable, it); err != nil {
		return entities.Financial{}, err
	}
	return f, nil
}

func (r *SubRecordDynamoRepository) GetFinancial(ctx context.Context, id string) (entities.Financial, error) {
	var it financialItem
	found, err := r.get(ctx, r.financialsTable, id, &it)
	if err != nil || !found {
		return entities.Financial{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	income, _ := strconv.ParseFloat(it.MonthlyIncome, 64)
	expenses, _ := strconv.ParseFloat(it.MonthlyExpenses, 64)
	return entities.Financial{
		ID:              it.ID,
		UserID:          it.UserID,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		Employment:      it.Employment,
		Extra:           rawOrNil(it.Extra),
		CreatedAt:       createdAt,
	}, nil
}

func (r *SubRecordDynamoRepository) PutEquipment(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	it := equipmentItem{
		ID:                  e.ID,
		UserID:              e.UserID,
		Description:         e.Description,
		Price:               floatToString(e.Price),
		RequestedTermMonths: e.RequestedTermMonths,
		Extra:               string(e.Extra),
		CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.DownPayment != 0 {
		it.DownPayment = floatToString(e.DownPayment)
	}
	if err := r.put(ctx, r.equipmentTable, it); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *SubRecordDynamoRepository) GetEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	var it equipmentItem
	found, err := r.get(ctx, r.equipmentTable, id, &it)
	if err != nil || !found {
		return entities.Equipment{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	downPayment, _ := strconv.ParseFloat(it.DownPayment, 64)
	return entities.Equipment{
		ID:                  it.ID,
		UserID:              it.UserID,
		Description:         it.Description,
		Price:               price,
		DownPayment:         downPayment,
		RequestedTermMonths: it.RequestedTermMonths,
		Extra:               rawOrNil(it.Extra),
		CreatedAt:           createdAt,
	}, nil
}

func rawOrNil(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}
