package response

import (
	"encoding/json"
	"time"

	"atelie_arq/internal/domain/entities"
)

// ProposalRecordResponse returns a stored derivation snapshot as-is: the
// documento blob is the engine output the UI already knows how to render.
type ProposalRecordResponse struct {
	ProposalID string          `json:"proposal_id"`
	ClienteID  string          `json:"cliente_id"`
	CreatedAt  time.Time       `json:"created_at"`
	Documento  json.RawMessage `json:"documento"`
}

func FromProposalRecord(r entities.ProposalRecord) ProposalRecordResponse {
	return ProposalRecordResponse{
		ProposalID: r.ID,
		ClienteID:  r.ClienteID,
		CreatedAt:  r.CreatedAt,
		Documento:  r.Documento,
	}
}

// FromProposalRecords converts a client's snapshot list.
func FromProposalRecords(records []entities.ProposalRecord) []ProposalRecordResponse {
	out := make([]ProposalRecordResponse, len(records))
	for i, r := range records {
		out[i] = FromProposalRecord(r)
	}
	return out
}
