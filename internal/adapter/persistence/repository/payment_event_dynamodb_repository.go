package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultPaymentEventsTableName = "payment_events"

type paymentEventItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	SessionID string `dynamodbav:"session_id"`
	Type      string `dynamodbav:"type"`
	Status    string `dynamodbav:"status"`
	Amount    string `dynamodbav:"amount"`
	PaidAt    string `dynamodbav:"paid_at"`
	CreatedAt string `dynamodbav:"created_at"`

	ProviderPayloadRaw []byte `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentEventDynamoRepository persists PaymentEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (order_id-index): order_id
//   - GSI2 (session_id-index): session_id

type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentEventDynamoRepository) Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
	av, err := attributevalue.MarshalMap(toPaymentEventItem(e))
	if err != nil {
		return entities.PaymentEvent{}, err
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
		return entities.PaymentEvent{}, err
	}
	return e, nil
}

func (r *PaymentEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentEvent{}, nil
	}

	var it paymentEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentEvent{}, err
	}
	return fromPaymentEventItem(it), nil
}

func (r *PaymentEventDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("session_id-index"),
		KeyConditionExpression: aws.String("#session_id = :session_id"),
		ExpressionAttributeNames: map[string]string{
			"#session_id": "session_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentEvent{}, nil
	}

	var it paymentEventItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentEvent{}, err
	}
	return fromPaymentEventItem(it), nil
}

func (r *PaymentEventDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("order_id-index"),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.PaymentEvent, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentEventItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		events = append(events, fromPaymentEventItem(it))
	}
	return events, nil
}

func (r *PaymentEventDynamoRepository) MarkCompleted(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time, providerPayload json.RawMessage) (entities.PaymentEvent, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #amount = :amount, #paid_at = :paid_at, #provider_payload_raw = :payload"),
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#status":               "status",
			"#amount":               "amount",
			"#paid_at":              "paid_at",
			"#provider_payload_raw": "provider_payload_raw",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.PaymentEventStatusCompleted)},
			":amount":  &types.AttributeValueMemberS{Value: decToString(amount)},
			":paid_at": &types.AttributeValueMemberS{Value: timeToString(paidAt)},
			":payload": &types.AttributeValueMemberB{Value: providerPayload},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentEvent{}, nil
		}
		return entities.PaymentEvent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentEvent{}, nil
	}
	var it paymentEventItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentEvent{}, err
	}
	return fromPaymentEventItem(it), nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		ID:                 e.ID,
		OrderID:            e.OrderID,
		SessionID:          e.SessionID,
		Type:               string(e.Type),
		Status:             string(e.Status),
		Amount:             decToString(e.Amount),
		PaidAt:             timePtrToString(e.PaidAt),
		CreatedAt:          timeToString(e.CreatedAt),
		ProviderPayloadRaw: e.ProviderPayloadRaw,
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	return entities.PaymentEvent{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		SessionID:          it.SessionID,
		Type:               entities.PaymentType(it.Type),
		Status:             entities.PaymentEventStatus(it.Status),
		Amount:             decFromString(it.Amount),
		PaidAt:             timePtrFromString(it.PaidAt),
		CreatedAt:          timeFromString(it.CreatedAt),
		ProviderPayloadRaw: it.ProviderPayloadRaw,
	}
}
