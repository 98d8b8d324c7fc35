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

const defaultServicesTableName = "services"

type serviceItemRecord struct {
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name"`
	BasePrice             string `dynamodbav:"price"`
	Description           string `dynamodbav:"description"`
	AllowManualClientEdit bool   `dynamodbav:"allow_manual_client_edit"`
}

// ServiceDynamoRepository persists the price catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Save(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	av, err := attributevalue.MarshalMap(serviceItemRecord{
		ID:                    s.ID,
		Name:                  s.Name,
		BasePrice:             floatToString(s.BasePrice),
		Description:           s.Description,
		AllowManualClientEdit: s.AllowManualClientEdit,
	})
	if err != nil {
		return entities.ServiceItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ServiceItem{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceItem{}, nil
	}

	var it serviceItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceItem{}, err
	}
	return fromServiceItemRecord(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.ServiceItem, error) {
	var services []entities.ServiceItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromServiceItemRecord(it))
		}

		if out.LastEvaluatedKey == nil {
			return services, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func fromServiceItemRecord(it serviceItemRecord) entities.ServiceItem {
	return entities.ServiceItem{
		ID:                    it.ID,
		Name:                  it.Name,
		BasePrice:             stringToFloat(it.BasePrice),
		Description:           it.Description,
		AllowManualClientEdit: it.AllowManualClientEdit,
	}
}
