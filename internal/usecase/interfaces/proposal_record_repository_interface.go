package interfaces

import (
	"context"

	"atelie_arq/internal/domain/entities"
)

// IProposalRecordRepository abstracts DynamoDB persistence for ProposalRecord.
//
// The proposal-service must be able to:
//   - store the opaque parameters+breakdown snapshot after a derivation run
//   - fetch a snapshot by its generated ID
//   - list a client's snapshots for the dashboard

type IProposalRecordRepository interface {
	Create(ctx context.Context, r entities.ProposalRecord) (entities.ProposalRecord, error)
	GetByID(ctx context.Context, id string) (entities.ProposalRecord, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.ProposalRecord, error)
}
