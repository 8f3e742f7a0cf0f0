package repository

import (
	"context"
	"sort"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivityLogTableName = "activity_log"

type activityItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Actor     string `dynamodbav:"actor"`
	Action    string `dynamodbav:"action"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ActivityDynamoRepository is the append-only audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "order_id-index" on order_id (string)

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_LOG_TABLE", defaultActivityLogTableName),
	}
}

func (r *ActivityDynamoRepository) Append(ctx context.Context, e entities.ActivityEvent) (entities.ActivityEvent, error) {
	av, err := attributevalue.MarshalMap(activityItem{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Actor:     e.Actor,
		Action:    string(e.Action),
		Reason:    e.Reason,
		CreatedAt: timeToString(e.CreatedAt),
	})
	if err != nil {
		return entities.ActivityEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ActivityEvent{}, err
	}
	return e, nil
}

func (r *ActivityDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ActivityEvent, error) {
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

	var items []activityItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	events := make([]entities.ActivityEvent, 0, len(items))
	for _, it := range items {
		events = append(events, entities.ActivityEvent{
			ID:        it.ID,
			OrderID:   it.OrderID,
			Actor:     it.Actor,
			Action:    entities.ActivityAction(it.Action),
			Reason:    it.Reason,
			CreatedAt: timeFromString(it.CreatedAt),
		})
	}

	// GSI order is not guaranteed; present the trail oldest first.
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	return events, nil
}
