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

const defaultEngineersTableName = "engineers"

type engineerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Available bool   `dynamodbav:"available"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EngineerDynamoRepository persists engineers in DynamoDB (PK: id).

type EngineerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngineerRepository = (*EngineerDynamoRepository)(nil)

func NewEngineerDynamoRepository(ddb *dynamodb.Client) *EngineerDynamoRepository {
	return &EngineerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGINEERS_TABLE", defaultEngineersTableName),
	}
}

func (r *EngineerDynamoRepository) Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	av, err := attributevalue.MarshalMap(engineerItem{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Available: e.Available,
		CreatedAt: timeToString(e.CreatedAt),
		UpdatedAt: timeToString(e.CreatedAt),
	})
	if err != nil {
		return entities.Engineer{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engineer{}, nil
		}
		return entities.Engineer{}, err
	}
	return e, nil
}

func (r *EngineerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engineer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Engineer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engineer{}, nil
	}

	var it engineerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engineer{}, err
	}
	return fromEngineerItem(it), nil
}

func (r *EngineerDynamoRepository) SetAvailable(ctx context.Context, id string, available bool) (entities.Engineer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #available = :available, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#available":  "available",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available":  &types.AttributeValueMemberBOOL{Value: available},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engineer{}, nil
		}
		return entities.Engineer{}, err
	}

	var it engineerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engineer{}, err
	}
	return fromEngineerItem(it), nil
}

func fromEngineerItem(it engineerItem) entities.Engineer {
	return entities.Engineer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Available: it.Available,
		CreatedAt: timeFromString(it.CreatedAt),
	}
}
