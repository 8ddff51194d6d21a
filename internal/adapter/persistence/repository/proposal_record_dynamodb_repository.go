package repository

import (
	"context"
	"encoding/json"
	"time"

	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsClienteIDIndex   = "cliente_id-index"
)

type proposalRecordItem struct {
	ID        string `dynamodbav:"id"`
	ClienteID string `dynamodbav:"cliente_id"`
	Documento string `dynamodbav:"documento"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProposalRecordDynamoRepository persists ProposalRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cliente_id-index (PK: cliente_id)
//
// Documento is stored as an opaque JSON string: the repository never
// inspects the derivation snapshot it carries.

type ProposalRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRecordRepository = (*ProposalRecordDynamoRepository)(nil)

func NewProposalRecordDynamoRepository(ddb *dynamodb.Client) *ProposalRecordDynamoRepository {
	return &ProposalRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalRecordDynamoRepository) Create(ctx context.Context, rec entities.ProposalRecord) (entities.ProposalRecord, error) {
	it := toProposalRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProposalRecord{}, err
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
		return entities.ProposalRecord{}, err
	}
	return rec, nil
}

func (r *ProposalRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProposalRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProposalRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProposalRecord{}, nil
	}

	var it proposalRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProposalRecord{}, err
	}
	return fromProposalRecordItem(it), nil
}

func (r *ProposalRecordDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.ProposalRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsClienteIDIndex),
		KeyConditionExpression: aws.String("cliente_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clienteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProposalRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalRecordItem(it))
	}
	return items, nil
}

func toProposalRecordItem(rec entities.ProposalRecord) proposalRecordItem {
	return proposalRecordItem{
		ID:        rec.ID,
		ClienteID: rec.ClienteID,
		Documento: string(rec.Documento),
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalRecordItem(it proposalRecordItem) entities.ProposalRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ProposalRecord{
		ID:        it.ID,
		ClienteID: it.ClienteID,
		Documento: json.RawMessage(it.Documento),
		CreatedAt: createdAt,
	}
}
