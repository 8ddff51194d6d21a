package entities

import (
	"encoding/json"
	"time"
)

// ProposalRecord is the persisted snapshot of one derivation run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cliente_id-index): cliente_id
//
// Documento keeps the serialized ProjectParameters + CostBreakdown +
// cronograma + proposal as an opaque JSON blob: the engine derives it, the
// persistence layer stores it unchanged, and the UI renders it as-is.
type ProposalRecord struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"cliente_id"`
	Documento json.RawMessage `json:"documento"`
	CreatedAt time.Time       `json:"created_at"`
}
