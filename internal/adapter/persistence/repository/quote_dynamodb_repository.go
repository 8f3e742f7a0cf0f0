package repository

import (
	"context"
	"errors"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ID        string            `dynamodbav:"id"`
	Product   string            `dynamodbav:"product"`
	Quantity  int               `dynamodbav:"quantity"`
	UnitPrice string            `dynamodbav:"unit_price"`
	Total     string            `dynamodbav:"total"`
	Config    map[string]string `dynamodbav:"config,omitempty"`
}

type quoteItem struct {
	ID              string          `dynamodbav:"id"`
	QuoteNumber     string          `dynamodbav:"quote_number"`
	ClientID        string          `dynamodbav:"client_id"`
	Items           []quoteLineItem `dynamodbav:"items"`
	Total           string          `dynamodbav:"total"`
	Currency        string          `dynamodbav:"currency"`
	DepositRequired bool            `dynamodbav:"deposit_required"`
	Status          string          `dynamodbav:"status"`
	ShareToken      string          `dynamodbav:"share_token"`
	Shareable       bool            `dynamodbav:"shareable"`
	ExpiresAt       string          `dynamodbav:"expires_at"`
	SentAt          string          `dynamodbav:"sent_at"`
	AcceptedAt      string          `dynamodbav:"accepted_at"`
	RejectedAt      string          `dynamodbav:"rejected_at"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (share_token-index): share_token

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByShareToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("share_token-index"),
		KeyConditionExpression: aws.String("#share_token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#share_token": "share_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	stampName := ""
	switch status {
	case entities.QuoteStatusSent:
		stampName = "sent_at"
	case entities.QuoteStatusAccepted:
		stampName = "accepted_at"
	case entities.QuoteStatusRejected:
		stampName = "rejected_at"
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if stampName != "" {
			expr += ", #stamp = :stamp"
			vals[":stamp"] = &types.AttributeValueMemberS{Value: timeToString(at)}
			names["#stamp"] = stampName
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) SetShareable(ctx context.Context, id string, shareable bool) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #shareable = :shareable, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":shareable":  &types.AttributeValueMemberBOOL{Value: shareable},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#shareable":  "shareable",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteLineItem{
			ID:        it.ID,
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: decToString(it.UnitPrice),
			Total:     decToString(it.Total),
			Config:    it.Config,
		})
	}
	return quoteItem{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		ClientID:        q.ClientID,
		Items:           items,
		Total:           decToString(q.Total),
		Currency:        q.Currency,
		DepositRequired: q.DepositRequired,
		Status:          string(q.Status),
		ShareToken:      q.ShareToken,
		Shareable:       q.Shareable,
		ExpiresAt:       timePtrToString(q.ExpiresAt),
		SentAt:          timePtrToString(q.SentAt),
		AcceptedAt:      timePtrToString(q.AcceptedAt),
		RejectedAt:      timePtrToString(q.RejectedAt),
		CreatedAt:       timeToString(q.CreatedAt),
		UpdatedAt:       timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			ID:        li.ID,
			Product:   li.Product,
			Quantity:  li.Quantity,
			UnitPrice: decFromString(li.UnitPrice),
			Total:     decFromString(li.Total),
			Config:    li.Config,
		})
	}
	return entities.Quote{
		ID:              it.ID,
		QuoteNumber:     it.QuoteNumber,
		ClientID:        it.ClientID,
		Items:           items,
		Total:           decFromString(it.Total),
		Currency:        it.Currency,
		DepositRequired: it.DepositRequired,
		Status:          entities.QuoteStatus(it.Status),
		ShareToken:      it.ShareToken,
		Shareable:       it.Shareable,
		ExpiresAt:       timePtrFromString(it.ExpiresAt),
		SentAt:          timePtrFromString(it.SentAt),
		AcceptedAt:      timePtrFromString(it.AcceptedAt),
		RejectedAt:      timePtrFromString(it.RejectedAt),
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
