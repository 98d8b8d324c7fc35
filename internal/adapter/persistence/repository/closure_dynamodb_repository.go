package repository

import (
	"context"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClosuresTableName = "closures"

type closureItem struct {
	Month      string `dynamodbav:"mes"`
	Closed     bool   `dynamodbav:"fechado"`
	ClosedAt   string `dynamodbav:"data_fechamento"`
	ClosedBy   string `dynamodbav:"usuario_fechou"`
	TotalValue string `dynamodbav:"total_valor"`
}

// ClosureDynamoRepository persists MonthlyClosure records in DynamoDB.
//
// Table requirements:
//   - PK: mes (string, AAAA-MM)
//
// The month is the partition key on purpose: it caps the table at one closure
// per month and lets the inspection repository reference a month's closure as
// a ConditionCheck target inside its write transactions.

type ClosureDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClosureRepository = (*ClosureDynamoRepository)(nil)

func NewClosureDynamoRepository(ddb *dynamodb.Client) *ClosureDynamoRepository {
	return &ClosureDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLOSURES_TABLE", defaultClosuresTableName),
	}
}

// Create writes the closure record conditionally on the month being open.
// A month that already has a record yields an empty MonthlyClosure, which the
// use case surfaces as an already-closed rejection; ticket data is untouched.
func (r *ClosureDynamoRepository) Create(ctx context.Context, c entities.MonthlyClosure) (entities.MonthlyClosure, error) {
	av, err := attributevalue.MarshalMap(toClosureItem(c))
	if err != nil {
		return entities.MonthlyClosure{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#mes)"),
		ExpressionAttributeNames: map[string]string{
			"#mes": "mes",
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.MonthlyClosure{}, nil
		}
		return entities.MonthlyClosure{}, err
	}
	return c, nil
}

func (r *ClosureDynamoRepository) GetByMonth(ctx context.Context, month string) (entities.MonthlyClosure, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mes": &types.AttributeValueMemberS{Value: month},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MonthlyClosure{}, err
	}
	if len(out.Item) == 0 {
		return entities.MonthlyClosure{}, nil
	}

	var it closureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MonthlyClosure{}, err
	}
	return fromClosureItem(it), nil
}

func (r *ClosureDynamoRepository) List(ctx context.Context) ([]entities.MonthlyClosure, error) {
	var closures []entities.MonthlyClosure
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []closureItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			closures = append(closures, fromClosureItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return closures, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toClosureItem(c entities.MonthlyClosure) closureItem {
	return closureItem{
		Month:      c.Month,
		Closed:     c.Closed,
		ClosedAt:   c.ClosedAt,
		ClosedBy:   c.ClosedBy,
		TotalValue: floatToString(c.TotalValueAtClosure),
	}
}

func fromClosureItem(it closureItem) entities.MonthlyClosure {
	return entities.MonthlyClosure{
		Month:               it.Month,
		Closed:              it.Closed,
		ClosedAt:            it.ClosedAt,
		ClosedBy:            it.ClosedBy,
		TotalValueAtClosure: stringToFloat(it.TotalValue),
	}
}
