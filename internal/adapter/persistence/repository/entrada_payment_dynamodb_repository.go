package repository

import (
	"context"
	"time"

	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "entrada_payments"
	paymentsProposalIDIndex  = "proposal_id-index"
)

type entradaPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	ProposalID   string                 `dynamodbav:"proposal_id"`
	Valor        int64                  `dynamodbav:"valor"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// EntradaPaymentDynamoRepository persists EntradaPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type EntradaPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEntradaPaymentRepository = (*EntradaPaymentDynamoRepository)(nil)

func NewEntradaPaymentDynamoRepository(ddb *dynamodb.Client) *EntradaPaymentDynamoRepository {
	return &EntradaPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *EntradaPaymentDynamoRepository) Create(ctx context.Context, p entities.EntradaPayment) (entities.EntradaPayment, error) {
	it := toEntradaPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EntradaPayment{}, err
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
		return entities.EntradaPayment{}, err
	}
	return p, nil
}

func (r *EntradaPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EntradaPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EntradaPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.EntradaPayment{}, nil
	}

	var it entradaPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EntradaPayment{}, err
	}
	return fromEntradaPaymentItem(it), nil
}

func (r *EntradaPaymentDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntradaPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EntradaPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it entradaPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEntradaPaymentItem(it))
	}
	return items, nil
}

func toEntradaPaymentItem(p entities.EntradaPayment) entradaPaymentItem {
	return entradaPaymentItem{
		ID:           p.ID,
		ProposalID:   p.ProposalID,
		Valor:        int64(p.Valor),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromEntradaPaymentItem(it entradaPaymentItem) entities.EntradaPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.EntradaPayment{
		ID:           it.ID,
		ProposalID:   it.ProposalID,
		Valor:        entities.Centavos(it.Valor),
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
