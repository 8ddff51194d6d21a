package response

import (
	"time"

	"atelie_arq/internal/domain/entities"
)

type EntradaPaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	ProposalID string    `json:"proposal_id"`
	Valor      float64   `json:"valor"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromEntradaPayment(p entities.EntradaPayment) EntradaPaymentResponse {
	return EntradaPaymentResponse{
		PaymentID:    p.ID,
		ProposalID:   p.ProposalID,
		Valor:        p.Valor.Reais(),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
