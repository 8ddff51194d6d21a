package request

import "encoding/json"

// EntradaPaymentCreateRequest is the payload for the entrada payment route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
// The handler also accepts the payload without the envelope.

type EntradaPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
