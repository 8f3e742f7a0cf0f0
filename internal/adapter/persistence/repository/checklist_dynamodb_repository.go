package repository

import (
	"context"
	"errors"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChecklistsTableName = "checklists"

type checklistItemRecord struct {
	OrderID  string `dynamodbav:"order_id"`
	Position int    `dynamodbav:"position"`
	Name     string `dynamodbav:"name"`
	Done     bool   `dynamodbav:"done"`
}

// ChecklistDynamoRepository persists checklist items per order.
//
// Table requirements:
//   - PK: order_id (string), SK: position (number)
//
// Only items are stored; the aggregate "complete" flag is recomputed by the
// caller from what this repository returns.

type ChecklistDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb *dynamodb.Client) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistsTableName),
	}
}

// PutItems replaces the checklist for an order: existing items beyond the new
// list are deleted, the rest are overwritten in place.
func (r *ChecklistDynamoRepository) PutItems(ctx context.Context, orderID string, items []entities.ChecklistItem) error {
	existing, err := r.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	keep := make(map[int]bool, len(items))
	for _, it := range items {
		keep[it.Position] = true
	}
	for _, it := range existing {
		if keep[it.Position] {
			continue
		}
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       checklistKey(orderID, it.Position),
		})
		if err != nil {
			return err
		}
	}

	for _, it := range items {
		av, err := attributevalue.MarshalMap(checklistItemRecord{
			OrderID:  orderID,
			Position: it.Position,
			Name:     it.Name,
			Done:     it.Done,
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ChecklistDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ChecklistItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var records []checklistItemRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}

	items := make([]entities.ChecklistItem, 0, len(records))
	for _, rec := range records {
		items = append(items, entities.ChecklistItem{
			OrderID:  rec.OrderID,
			Position: rec.Position,
			Name:     rec.Name,
			Done:     rec.Done,
		})
	}
	return items, nil
}

func (r *ChecklistDynamoRepository) SetItemDone(ctx context.Context, orderID string, position int, done bool) (entities.ChecklistItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 checklistKey(orderID, position),
		UpdateExpression:    aws.String("SET #done = :done"),
		ConditionExpression: aws.String("attribute_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#done":     "done",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":done": &types.AttributeValueMemberBOOL{Value: done},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChecklistItem{}, nil
		}
		return entities.ChecklistItem{}, err
	}

	var rec checklistItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.ChecklistItem{}, err
	}
	return entities.ChecklistItem{
		OrderID:  rec.OrderID,
		Position: rec.Position,
		Name:     rec.Name,
		Done:     rec.Done,
	}, nil
}

func checklistKey(orderID string, position int) map[string]types.AttributeValue {
	pos, _ := attributevalue.Marshal(position)
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: orderID},
		"position": pos,
	}
}
