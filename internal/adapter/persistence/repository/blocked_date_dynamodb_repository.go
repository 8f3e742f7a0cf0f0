package repository

import (
	"context"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBlockedDatesTableName = "blocked_dates"

type blockedDateItem struct {
	ClientID  string `dynamodbav:"client_id"`
	Date      string `dynamodbav:"date"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// BlockedDateDynamoRepository persists client unavailability dates.
//
// Table requirements:
//   - PK: client_id (string), SK: date (string, YYYY-MM-DD)

type BlockedDateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBlockedDateRepository = (*BlockedDateDynamoRepository)(nil)

func NewBlockedDateDynamoRepository(ddb *dynamodb.Client) *BlockedDateDynamoRepository {
	return &BlockedDateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLOCKED_DATES_TABLE", defaultBlockedDatesTableName),
	}
}

func (r *BlockedDateDynamoRepository) Create(ctx context.Context, b entities.BlockedDate) (entities.BlockedDate, error) {
	av, err := attributevalue.MarshalMap(blockedDateItem{
		ClientID:  b.ClientID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: timeToString(b.CreatedAt),
	})
	if err != nil {
		return entities.BlockedDate{}, err
	}

	// A repeated block for the same day is an idempotent overwrite.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BlockedDate{}, err
	}
	return b, nil
}

func (r *BlockedDateDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.BlockedDate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []blockedDateItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	blocked := make([]entities.BlockedDate, 0, len(items))
	for _, it := range items {
		blocked = append(blocked, entities.BlockedDate{
			ClientID:  it.ClientID,
			Date:      it.Date,
			Reason:    it.Reason,
			CreatedAt: timeFromString(it.CreatedAt),
		})
	}
	return blocked, nil
}
