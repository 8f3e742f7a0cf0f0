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

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	EngineerID string `dynamodbav:"engineer_id"`
	Date       string `dynamodbav:"date"`
	OrderID    string `dynamodbav:"order_id"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// BookingDynamoRepository reserves engineer days in DynamoDB.
//
// Table requirements:
//   - PK: engineer_id (string), SK: date (string, YYYY-MM-DD)
//
// The composite key makes (engineer, date) unique; Create's condition turns
// a concurrent double-booking into a rejected write.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(bookingItem{
		EngineerID: b.EngineerID,
		Date:       b.Date,
		OrderID:    b.OrderID,
		CreatedAt:  timeToString(b.CreatedAt),
	})
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#engineer_id)"),
		ExpressionAttributeNames: map[string]string{
			"#engineer_id": "engineer_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByEngineerAndDate(ctx context.Context, engineerID, date string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"engineer_id": &types.AttributeValueMemberS{Value: engineerID},
			"date":        &types.AttributeValueMemberS{Value: date},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return entities.Booking{
		EngineerID: it.EngineerID,
		Date:       it.Date,
		OrderID:    it.OrderID,
		CreatedAt:  timeFromString(it.CreatedAt),
	}, nil
}

func (r *BookingDynamoRepository) DeleteByEngineerAndDate(ctx context.Context, engineerID, date string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"engineer_id": &types.AttributeValueMemberS{Value: engineerID},
			"date":        &types.AttributeValueMemberS{Value: date},
		},
	})
	return err
}
