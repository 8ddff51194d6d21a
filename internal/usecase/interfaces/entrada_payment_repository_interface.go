package interfaces

import (
	"context"

	"atelie_arq/internal/domain/entities"
)

// IEntradaPaymentRepository abstracts DynamoDB persistence for EntradaPayment.

type IEntradaPaymentRepository interface {
	Create(ctx context.Context, p entities.EntradaPayment) (entities.EntradaPayment, error)
	GetByID(ctx context.Context, id string) (entities.EntradaPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntradaPayment, error)
}
