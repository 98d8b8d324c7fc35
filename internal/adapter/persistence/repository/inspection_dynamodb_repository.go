package repository

import (
	"context"
	"sort"
	"time"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInspectionsTableName = "inspections"

type inspectionServiceItem struct {
	ServiceID string `dynamodbav:"service_id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
}

type inspectionClientItem struct {
	Name         string `dynamodbav:"name"`
	Document     string `dynamodbav:"cpf"`
	Phone        string `dynamodbav:"phone"`
	Address      string `dynamodbav:"address"`
	CEP          string `dynamodbav:"cep"`
	Neighborhood string `dynamodbav:"neighborhood"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement"`
}

type inspectionItem struct {
	ID           string `dynamodbav:"id"`
	Date         string `dynamodbav:"date"`
	LicensePlate string `dynamodbav:"license_plate"`
	VehicleModel string `dynamodbav:"vehicle_model"`

	Services     []inspectionServiceItem `dynamodbav:"services"`
	OtherDesc    string                  `dynamodbav:"other_service_description"`
	OtherPrice   string                  `dynamodbav:"other_service_price"`

	Client         inspectionClientItem `dynamodbav:"client"`
	Inspector      string               `dynamodbav:"inspector"`
	IndicationID   string               `dynamodbav:"indication_id"`
	IndicationName string               `dynamodbav:"indication_name"`
	Observations   string               `dynamodbav:"observations"`

	PaymentMethod string `dynamodbav:"payment_method"`
	NFe           string `dynamodbav:"nfe"`

	TotalValue     string `dynamodbav:"total_value"`
	ReferenceMonth string `dynamodbav:"mes_referencia"`
	SheetStatus    string `dynamodbav:"status_ficha"`
	PaymentStatus  string `dynamodbav:"status_pagamento"`
	PaymentDate    string `dynamodbav:"data_pagamento"`
	Status         string `dynamodbav:"status"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository persists Inspection sheets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write goes through TransactWriteItems with a ConditionCheck against
// the closures table for each affected reference month, asserting either that
// no closure record exists for the month or that it is not marked closed. The
// closed-period guard therefore holds inside the same transaction as the
// write, not merely at a client-side pre-check.

type InspectionDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	closuresTableName string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
		closuresTableName: getenvDefault("CLOSURES_TABLE", defaultClosuresTableName),
	}
}

func (r *InspectionDynamoRepository) Save(ctx context.Context, i entities.Inspection) (entities.Inspection, error) {
	av, err := attributevalue.MarshalMap(toInspectionItem(i))
	if err != nil {
		return entities.Inspection{}, err
	}

	items := append(r.monthGuards([]string{i.ReferenceMonth}), types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(r.tableName),
			Item:      av,
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Inspection{}, interfaces.ErrPeriodClosed
		}
		return entities.Inspection{}, err
	}
	return i, nil
}

// SaveBatch writes a multi-selection atomically: one Put per sheet plus one
// ConditionCheck per distinct reference month. A single closed month cancels
// the whole transaction, so partial application is impossible.
func (r *InspectionDynamoRepository) SaveBatch(ctx context.Context, sheets []entities.Inspection) error {
	if len(sheets) == 0 {
		return nil
	}

	months := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		months = append(months, sheet.ReferenceMonth)
	}

	items := r.monthGuards(months)
	for _, sheet := range sheets {
		av, err := attributevalue.MarshalMap(toInspectionItem(sheet))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return interfaces.ErrPeriodClosed
		}
		return err
	}
	return nil
}

func (r *InspectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) List(ctx context.Context) ([]entities.Inspection, error) {
	var sheets []entities.Inspection
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []inspectionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			sheets = append(sheets, fromInspectionItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(sheets, func(a, b int) bool { return sheets[a].Date > sheets[b].Date })
	return sheets, nil
}

func (r *InspectionDynamoRepository) Delete(ctx context.Context, id string, referenceMonth string) error {
	items := append(r.monthGuards([]string{referenceMonth}), types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		},
	})

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return interfaces.ErrPeriodClosed
		}
		return err
	}
	return nil
}

// monthGuards builds one ConditionCheck per distinct reference month,
// asserting the month has no closure record or an open one.
func (r *InspectionDynamoRepository) monthGuards(months []string) []types.TransactWriteItem {
	seen := map[string]struct{}{}
	var items []types.TransactWriteItem
	for _, month := range months {
		if month == "" {
			continue
		}
		if _, ok := seen[month]; ok {
			continue
		}
		seen[month] = struct{}{}

		items = append(items, types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName: aws.String(r.closuresTableName),
				Key: map[string]types.AttributeValue{
					"mes": &types.AttributeValueMemberS{Value: month},
				},
				ConditionExpression: aws.String("attribute_not_exists(#mes) OR #fechado = :aberto"),
				ExpressionAttributeNames: map[string]string{
					"#mes":     "mes",
					"#fechado": "fechado",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":aberto": &types.AttributeValueMemberBOOL{Value: false},
				},
			},
		})
	}
	return items
}

func toInspectionItem(i entities.Inspection) inspectionItem {
	lines := make([]inspectionServiceItem, len(i.Services))
	for idx, line := range i.Services {
		lines[idx] = inspectionServiceItem{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Price:     floatToString(line.Price),
		}
	}

	return inspectionItem{
		ID:           i.ID,
		Date:         i.Date,
		LicensePlate: i.LicensePlate,
		VehicleModel: i.VehicleModel,
		Services:     lines,
		OtherDesc:    i.OtherServiceDescription,
		OtherPrice:   floatToString(i.OtherServicePrice),
		Client: inspectionClientItem{
			Name:         i.Client.Name,
			Document:     i.Client.Document,
			Phone:        i.Client.Phone,
			Address:      i.Client.Address,
			CEP:          i.Client.CEP,
			Neighborhood: i.Client.Neighborhood,
			Number:       i.Client.Number,
			Complement:   i.Client.Complement,
		},
		Inspector:      i.Inspector,
		IndicationID:   i.IndicationID,
		IndicationName: i.IndicationName,
		Observations:   i.Observations,
		PaymentMethod:  string(i.PaymentMethod),
		NFe:            i.NFe,
		TotalValue:     floatToString(i.TotalValue),
		ReferenceMonth: i.ReferenceMonth,
		SheetStatus:    string(i.SheetStatus),
		PaymentStatus:  string(i.PaymentStatus),
		PaymentDate:    i.PaymentDate,
		Status:         string(i.Status),
		CreatedAt:      i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInspectionItem(it inspectionItem) entities.Inspection {
	lines := make([]entities.InspectionService, len(it.Services))
	for idx, line := range it.Services {
		lines[idx] = entities.InspectionService{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Price:     stringToFloat(line.Price),
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Inspection{
		ID:           it.ID,
		Date:         it.Date,
		LicensePlate: it.LicensePlate,
		VehicleModel: it.VehicleModel,
		Services:     lines,
		OtherServiceDescription: it.OtherDesc,
		OtherServicePrice:       stringToFloat(it.OtherPrice),
		Client: entities.Client{
			Name:         it.Client.Name,
			Document:     it.Client.Document,
			Phone:        it.Client.Phone,
			Address:      it.Client.Address,
			CEP:          it.Client.CEP,
			Neighborhood: it.Client.Neighborhood,
			Number:       it.Client.Number,
			Complement:   it.Client.Complement,
		},
		Inspector:      it.Inspector,
		IndicationID:   it.IndicationID,
		IndicationName: it.IndicationName,
		Observations:   it.Observations,
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		NFe:            it.NFe,
		TotalValue:     stringToFloat(it.TotalValue),
		ReferenceMonth: it.ReferenceMonth,
		SheetStatus:    entities.SheetStatus(it.SheetStatus),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		PaymentDate:    it.PaymentDate,
		Status:         entities.InspectionStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
