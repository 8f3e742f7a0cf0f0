package repository

import (
	"context"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultSettingsTableName = "settings"
	paymentPolicyItemID      = "payment_policy"
)

type paymentPolicyItem struct {
	ID           string `dynamodbav:"id"`
	Stage        string `dynamodbav:"stage"`
	DepositType  string `dynamodbav:"deposit_type,omitempty"`
	DepositValue string `dynamodbav:"deposit_value,omitempty"`
	Currency     string `dynamodbav:"currency"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PaymentPolicyDynamoRepository stores the single tenant-wide payment policy
// as one item in the settings table (PK: id = "payment_policy"). When no item
// exists yet, Get returns a full-payment default so a fresh install works
// before an admin saves anything.

type PaymentPolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentPolicyRepository = (*PaymentPolicyDynamoRepository)(nil)

func NewPaymentPolicyDynamoRepository(ddb *dynamodb.Client) *PaymentPolicyDynamoRepository {
	return &PaymentPolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// DefaultPaymentPolicy is the policy applied before an admin saves one.
func DefaultPaymentPolicy() entities.PaymentPolicy {
	return entities.PaymentPolicy{
		Stage:    entities.PaymentStageFull,
		Currency: "GBP",
	}
}

func (r *PaymentPolicyDynamoRepository) Get(ctx context.Context) (entities.PaymentPolicy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentPolicyItemID},
		},
	})
	if err != nil {
		return entities.PaymentPolicy{}, err
	}
	if len(out.Item) == 0 {
		return DefaultPaymentPolicy(), nil
	}

	var it paymentPolicyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentPolicy{}, err
	}

	value := decimal.Zero
	if it.DepositValue != "" {
		value, err = decimal.NewFromString(it.DepositValue)
		if err != nil {
			return entities.PaymentPolicy{}, err
		}
	}
	return entities.PaymentPolicy{
		Stage:        entities.PaymentStage(it.Stage),
		DepositType:  entities.DepositType(it.DepositType),
		DepositValue: value,
		Currency:     it.Currency,
		UpdatedAt:    timeFromString(it.UpdatedAt),
	}, nil
}

func (r *PaymentPolicyDynamoRepository) Put(ctx context.Context, p entities.PaymentPolicy) (entities.PaymentPolicy, error) {
	p.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(paymentPolicyItem{
		ID:           paymentPolicyItemID,
		Stage:        string(p.Stage),
		DepositType:  string(p.DepositType),
		DepositValue: decToString(p.DepositValue),
		Currency:     p.Currency,
		UpdatedAt:    timeToString(p.UpdatedAt),
	})
	if err != nil {
		return entities.PaymentPolicy{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentPolicy{}, err
	}
	return p, nil
}
