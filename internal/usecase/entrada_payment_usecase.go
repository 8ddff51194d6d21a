package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"atelie_arq/internal/domain/engine"
	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase/interfaces"
)

var (
	ErrEntradaPaymentNotFound     = errors.New("entrada payment not found")
	ErrInvalidPaymentProposalID   = errors.New("invalid proposal_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrProposalSemEntrada         = errors.New("proposal has no entrada stage")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IEntradaPaymentUseCase collects the contract-signing installment of a
// stored proposal through the payment gateway.
//
// The charged amount is always the entrada stage of the persisted
// cronograma — the caller's payload never overrides it.

type IEntradaPaymentUseCase interface {
	CreateEntradaPayment(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.EntradaPayment, error)
	GetByID(ctx context.Context, id string) (entities.EntradaPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntradaPayment, error)
}

type EntradaPaymentUseCase struct {
	repo         interfaces.IEntradaPaymentRepository
	proposalRepo interfaces.IProposalRecordRepository
	gateway      interfaces.IPaymentGateway
}

var _ IEntradaPaymentUseCase = (*EntradaPaymentUseCase)(nil)

func NewEntradaPaymentUseCase(
	repo interfaces.IEntradaPaymentRepository,
	proposalRepo interfaces.IProposalRecordRepository,
	gateway interfaces.IPaymentGateway,
) *EntradaPaymentUseCase {
	return &EntradaPaymentUseCase{repo: repo, proposalRepo: proposalRepo, gateway: gateway}
}

func (u *EntradaPaymentUseCase) CreateEntradaPayment(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.EntradaPayment, error) {
	log.Printf("[payment][usecase] entrada start raw_proposal_id=%q payload_len=%d", proposalID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()

	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.EntradaPayment{}, ErrInvalidPaymentProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload proposal_id=%s", proposalID)
			return entities.EntradaPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.EntradaPayment{}, errors.New("payment gateway not configured")
	}

	record, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading proposal proposal_id=%s err=%v", proposalID, err)
		return entities.EntradaPayment{}, err
	}
	if record.ID == "" {
		return entities.EntradaPayment{}, ErrProposalNotFound
	}

	entrada, err := entradaDoDocumento(record.Documento)
	if err != nil {
		log.Printf("[payment][usecase] no entrada stage proposal_id=%s err=%v", proposalID, err)
		return entities.EntradaPayment{}, err
	}
	log.Printf("[payment][usecase] entrada resolved proposal_id=%s valor=%.2f", proposalID, entrada.Reais())

	// The source of truth for the amount is the stored cronograma.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = proposalID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Entrada — proposta %s", proposalID)
		}
		reqMap["transaction_amount"] = entrada.Reais()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed proposal_id=%s err=%v", proposalID, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.EntradaPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.EntradaPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.EntradaPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success proposal_id=%s provider_payment_id=%s provider_status=%s",
		proposalID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed proposal_id=%s err=%v", proposalID, err)
	}

	p := entities.EntradaPayment{
		ID:           providerPaymentID,
		ProposalID:   proposalID,
		Valor:        entrada,
		Date:         time.Now().UTC(),
		Status:       statusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed proposal_id=%s payment_id=%s err=%v", proposalID, p.ID, err)
		return entities.EntradaPayment{}, err
	}
	log.Printf("[payment][usecase] entrada success proposal_id=%s payment_id=%s status=%s", proposalID, created.ID, created.Status)
	return created, nil
}

func (u *EntradaPaymentUseCase) GetByID(ctx context.Context, id string) (entities.EntradaPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EntradaPayment{}, ErrEntradaPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EntradaPayment{}, err
	}
	if p.ID == "" {
		return entities.EntradaPayment{}, ErrEntradaPaymentNotFound
	}
	return p, nil
}

func (u *EntradaPaymentUseCase) ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntradaPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidPaymentProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

// entradaDoDocumento extracts the entrada stage amount from a stored
// derivation snapshot. The entrada is the only cronograma stage with no
// discipline bindings: every delivery milestone carries the disciplines
// whose phases it closes. A cronograma generated with a zero entrada
// percentage carries no such stage, so there is nothing to charge.
func entradaDoDocumento(documento json.RawMessage) (entities.Centavos, error) {
	var bundle engine.Bundle
	if err := json.Unmarshal(documento, &bundle); err != nil {
		return 0, err
	}
	for _, estagio := range bundle.Cronograma {
		if len(estagio.Disciplinas) == 0 {
			return estagio.Valor, nil
		}
	}
	return 0, ErrProposalSemEntrada
}

func statusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "400") || strings.Contains(msg, "bad_request") || strings.Contains(msg, "bad request")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
