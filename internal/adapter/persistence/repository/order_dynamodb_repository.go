package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	QuoteID     string `dynamodbav:"quote_id"`
	ClientID    string `dynamodbav:"client_id"`
	Total       string `dynamodbav:"total"`
	Deposit     string `dynamodbav:"deposit"`
	AmountPaid  string `dynamodbav:"amount_paid"`
	Currency    string `dynamodbav:"currency"`
	Stage       string `dynamodbav:"payment_stage"`
	JobAddress  string `dynamodbav:"job_address"`

	Status         string `dynamodbav:"status"`
	StatusOverride bool   `dynamodbav:"status_override"`
	OverrideNotes  string `dynamodbav:"override_notes"`

	AgreementSignedAt  string `dynamodbav:"agreement_signed_at"`
	ScheduledInstallAt string `dynamodbav:"scheduled_install_at"`
	InstallWindow      string `dynamodbav:"install_window"`
	EstimatedHours     int    `dynamodbav:"estimated_hours"`

	EngineerID        string `dynamodbav:"engineer_id"`
	EngineerStatus    string `dynamodbav:"engineer_status"`
	EngineerNotes     string `dynamodbav:"engineer_notes"`
	SignedOffAt       string `dynamodbav:"signed_off_at"`
	EngineerSignature string `dynamodbav:"engineer_signature"`

	Evidence map[string][]string `dynamodbav:"evidence,omitempty"`
	QANotes  string              `dynamodbav:"qa_notes"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// quoteGuardItem lives in the orders table under the key "quote#<quote_id>"
// and makes one-order-per-quote a transactional data-layer invariant rather
// than an application-level check.
type quoteGuardItem struct {
	ID      string `dynamodbav:"id"`
	OrderID string `dynamodbav:"order_id"`
}

const quoteGuardPrefix = "quote#"

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Orders and their quote guard items share the table.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) CreateForQuote(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	guardAV, err := attributevalue.MarshalMap(quoteGuardItem{ID: quoteGuardPrefix + o.QuoteID, OrderID: o.ID})
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error) {
	guard, err := r.getGuard(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if guard.OrderID == "" {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, guard.OrderID)
}

func (r *OrderDynamoRepository) RetractForQuote(ctx context.Context, quoteID string) error {
	guard, err := r.getGuard(ctx, quoteID)
	if err != nil {
		return err
	}
	if guard.OrderID == "" {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: guard.OrderID},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: guard.ID},
				},
			}},
		},
	})
	return err
}

func (r *OrderDynamoRepository) getGuard(ctx context.Context, quoteID string) (quoteGuardItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteGuardPrefix + quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return quoteGuardItem{}, err
	}
	if len(out.Item) == 0 {
		return quoteGuardItem{}, nil
	}
	var guard quoteGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return quoteGuardItem{}, err
	}
	return guard, nil
}

func (r *OrderDynamoRepository) AddAmountPaid(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	// Read-add-write on the decimal string. Orders are single-writer in
	// practice; the calculation layer floors outstanding at zero either way.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, nil
	}
	newPaid := current.AmountPaid.Add(amount)

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #amount_paid = :amount_paid, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount_paid": &types.AttributeValueMemberS{Value: decToString(newPaid)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#amount_paid": "amount_paid",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetAgreementSigned(ctx context.Context, id string, at time.Time) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #agreement_signed_at = :at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":at":         &types.AttributeValueMemberS{Value: timeToString(at)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#agreement_signed_at": "agreement_signed_at",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetSchedule(ctx context.Context, id string, at time.Time, window string, estimatedHours int) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #scheduled_install_at = :at, #install_window = :window, #estimated_hours = :hours, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":at":         &types.AttributeValueMemberS{Value: timeToString(at)},
			":window":     &types.AttributeValueMemberS{Value: window},
			":hours":      &types.AttributeValueMemberN{Value: strconv.Itoa(estimatedHours)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#scheduled_install_at": "scheduled_install_at",
			"#install_window":       "install_window",
			"#estimated_hours":      "estimated_hours",
			"#updated_at":           "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetOverride(ctx context.Context, id string, override bool, status entities.OrderStatus, notes string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status_override = :override, #status = :status, #override_notes = :notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":override":   &types.AttributeValueMemberBOOL{Value: override},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status_override": "status_override",
			"#status":          "status",
			"#override_notes":  "override_notes",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetStoredStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
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
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) AssignEngineer(ctx context.Context, id, engineerID string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #engineer_id = :engineer_id, #engineer_status = :engineer_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":engineer_id":     &types.AttributeValueMemberS{Value: engineerID},
			":engineer_status": &types.AttributeValueMemberS{Value: string(entities.EngineerJobStatusAssigned)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#engineer_id":     "engineer_id",
			"#engineer_status": "engineer_status",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetEngineerProgress(ctx context.Context, id string, status entities.EngineerJobStatus, notes string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #engineer_status = :engineer_status, #engineer_notes = :engineer_notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":engineer_status": &types.AttributeValueMemberS{Value: string(status)},
			":engineer_notes":  &types.AttributeValueMemberS{Value: notes},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#engineer_status": "engineer_status",
			"#engineer_notes":  "engineer_notes",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetSignOff(ctx context.Context, id string, signedOffAt *time.Time, signature string, status entities.EngineerJobStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #signed_off_at = :signed_off_at, #engineer_signature = :signature, #engineer_status = :engineer_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":signed_off_at":   &types.AttributeValueMemberS{Value: timePtrToString(signedOffAt)},
			":signature":       &types.AttributeValueMemberS{Value: signature},
			":engineer_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#signed_off_at":      "signed_off_at",
			"#engineer_signature": "engineer_signature",
			"#engineer_status":    "engineer_status",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetEvidence(ctx context.Context, id string, evidence map[string][]string) (entities.Order, error) {
	av, err := attributevalue.Marshal(evidence)
	if err != nil {
		return entities.Order{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #evidence = :evidence, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":evidence":   av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#evidence":   "evidence",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetQANotes(ctx context.Context, id, notes string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #qa_notes = :qa_notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":qa_notes":   &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#qa_notes":   "qa_notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		QuoteID:            o.QuoteID,
		ClientID:           o.ClientID,
		Total:              decToString(o.Total),
		Deposit:            decToString(o.Deposit),
		AmountPaid:         decToString(o.AmountPaid),
		Currency:           o.Currency,
		Stage:              string(o.Stage),
		JobAddress:         o.JobAddress,
		Status:             string(o.Status),
		StatusOverride:     o.StatusOverride,
		OverrideNotes:      o.OverrideNotes,
		AgreementSignedAt:  timePtrToString(o.AgreementSignedAt),
		ScheduledInstallAt: timePtrToString(o.ScheduledInstallAt),
		InstallWindow:      o.InstallWindow,
		EstimatedHours:     o.EstimatedHours,
		EngineerID:         o.EngineerID,
		EngineerStatus:     string(o.EngineerStatus),
		EngineerNotes:      o.EngineerNotes,
		SignedOffAt:        timePtrToString(o.SignedOffAt),
		EngineerSignature:  o.EngineerSignature,
		Evidence:           o.Evidence,
		QANotes:            o.QANotes,
		CreatedAt:          timeToString(o.CreatedAt),
		UpdatedAt:          timeToString(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                 it.ID,
		OrderNumber:        it.OrderNumber,
		QuoteID:            it.QuoteID,
		ClientID:           it.ClientID,
		Total:              decFromString(it.Total),
		Deposit:            decFromString(it.Deposit),
		AmountPaid:         decFromString(it.AmountPaid),
		Currency:           it.Currency,
		Stage:              entities.PaymentStage(it.Stage),
		JobAddress:         it.JobAddress,
		Status:             entities.OrderStatus(it.Status),
		StatusOverride:     it.StatusOverride,
		OverrideNotes:      it.OverrideNotes,
		AgreementSignedAt:  timePtrFromString(it.AgreementSignedAt),
		ScheduledInstallAt: timePtrFromString(it.ScheduledInstallAt),
		InstallWindow:      it.InstallWindow,
		EstimatedHours:     it.EstimatedHours,
		EngineerID:         it.EngineerID,
		EngineerStatus:     entities.EngineerJobStatus(it.EngineerStatus),
		EngineerNotes:      it.EngineerNotes,
		SignedOffAt:        timePtrFromString(it.SignedOffAt),
		EngineerSignature:  it.EngineerSignature,
		Evidence:           it.Evidence,
		QANotes:            it.QANotes,
		CreatedAt:          timeFromString(it.CreatedAt),
		UpdatedAt:          timeFromString(it.UpdatedAt),
	}
}
