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

const defaultIndicationsTableName = "indications"

type indicationItem struct {
	ID           string            `dynamodbav:"id"`
	Name         string            `dynamodbav:"name"`
	Document     string            `dynamodbav:"document"`
	Phone        string            `dynamodbav:"phone"`
	Email        string            `dynamodbav:"email"`
	Address      string            `dynamodbav:"address"`
	CEP          string            `dynamodbav:"cep"`
	Neighborhood string            `dynamodbav:"neighborhood"`
	Number       string            `dynamodbav:"number"`
	CustomPrices map[string]string `dynamodbav:"custom_prices"`
}

// IndicationDynamoRepository persists referral partners in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CustomPrices is stored as a string map keyed by catalog service id.

type IndicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIndicationRepository = (*IndicationDynamoRepository)(nil)

func NewIndicationDynamoRepository(ddb *dynamodb.Client) *IndicationDynamoRepository {
	return &IndicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INDICATIONS_TABLE", defaultIndicationsTableName),
	}
}

func (r *IndicationDynamoRepository) Save(ctx context.Context, ind entities.Indication) (entities.Indication, error) {
	av, err := attributevalue.MarshalMap(toIndicationItem(ind))
	if err != nil {
		return entities.Indication{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Indication{}, err
	}
	return ind, nil
}

func (r *IndicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Indication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Indication{}, err
	}
	if len(out.Item) == 0 {
		return entities.Indication{}, nil
	}

	var it indicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Indication{}, err
	}
	return fromIndicationItem(it), nil
}

func (r *IndicationDynamoRepository) List(ctx context.Context) ([]entities.Indication, error) {
	var indications []entities.Indication
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []indicationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			indications = append(indications, fromIndicationItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return indications, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *IndicationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toIndicationItem(ind entities.Indication) indicationItem {
	var prices map[string]string
	if len(ind.CustomPrices) > 0 {
		prices = make(map[string]string, len(ind.CustomPrices))
		for serviceID, price := range ind.CustomPrices {
			prices[serviceID] = floatToString(price)
		}
	}

	return indicationItem{
		ID:           ind.ID,
		Name:         ind.Name,
		Document:     ind.Document,
		Phone:        ind.Phone,
		Email:        ind.Email,
		Address:      ind.Address,
		CEP:          ind.CEP,
		Neighborhood: ind.Neighborhood,
		Number:       ind.Number,
		CustomPrices: prices,
	}
}

func fromIndicationItem(it indicationItem) entities.Indication {
	var prices map[string]float64
	if len(it.CustomPrices) > 0 {
		prices = make(map[string]float64, len(it.CustomPrices))
		for serviceID, price := range it.CustomPrices {
			prices[serviceID] = stringToFloat(price)
		}
	}

	return entities.Indication{
		ID:           it.ID,
		Name:         it.Name,
		Document:     it.Document,
		Phone:        it.Phone,
		Email:        it.Email,
		Address:      it.Address,
		CEP:          it.CEP,
		Neighborhood: it.Neighborhood,
		Number:       it.Number,
		CustomPrices: prices,
	}
}
