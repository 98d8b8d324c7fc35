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

const defaultAuditLogsTableName = "audit_logs"

type auditLogItem struct {
	ID          string `dynamodbav:"id"`
	Timestamp   string `dynamodbav:"timestamp"`
	ActorID     string `dynamodbav:"user_id"`
	ActorName   string `dynamodbav:"user_name"`
	Category    string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	Details     string `dynamodbav:"details,omitempty"`
}

// AuditLogDynamoRepository is an append-only audit trail in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, entry entities.AuditLog) error {
	av, err := attributevalue.MarshalMap(auditLogItem{
		ID:          entry.ID,
		Timestamp:   entry.Timestamp.UTC().Format(time.RFC3339Nano),
		ActorID:     entry.ActorID,
		ActorName:   entry.ActorName,
		Category:    string(entry.Category),
		Description: entry.Description,
		Details:     entry.Details,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AuditLogDynamoRepository) List(ctx context.Context) ([]entities.AuditLog, error) {
	var entries []entities.AuditLog
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []auditLogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
			entries = append(entries, entities.AuditLog{
				ID:          it.ID,
				Timestamp:   ts,
				ActorID:     it.ActorID,
				ActorName:   it.ActorName,
				Category:    entities.AuditCategory(it.Category),
				Description: it.Description,
				Details:     it.Details,
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Newest first.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
