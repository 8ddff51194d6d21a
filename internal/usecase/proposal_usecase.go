package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"atelie_arq/internal/domain/engine"
	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidClienteID  = errors.New("invalid cliente_id")
)

// ProposalResult pairs the persisted record with the derivation output so
// the handler can return both without a second round trip.
type ProposalResult struct {
	Record entities.ProposalRecord
	Bundle engine.Bundle
}

// IProposalUseCase exposes the derivation pipeline plus record retrieval.
//
// GenerateProposal runs the full engine pipeline and stores the serialized
// parameters+breakdown snapshot as an opaque record; the engine itself
// never touches storage.

type IProposalUseCase interface {
	GenerateProposal(ctx context.Context, p entities.ProjectParameters) (ProposalResult, error)
	GetByID(ctx context.Context, id string) (entities.ProposalRecord, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.ProposalRecord, error)
}

type ProposalUseCase struct {
	eng  *engine.Engine
	repo interfaces.IProposalRecordRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(eng *engine.Engine, repo interfaces.IProposalRecordRepository) *ProposalUseCase {
	return &ProposalUseCase{eng: eng, repo: repo}
}

func (u *ProposalUseCase) GenerateProposal(ctx context.Context, p entities.ProjectParameters) (ProposalResult, error) {
	log.Printf("[proposal][usecase] generate start cliente_id=%s area=%.2f disciplinas=%d",
		p.ClienteID, p.AreaTotal, len(p.DisciplinasSelecionadas))

	bundle, err := u.eng.GenerateProposal(p)
	if err != nil {
		log.Printf("[proposal][usecase] derivation failed cliente_id=%s err=%v", p.ClienteID, err)
		return ProposalResult{}, err
	}

	documento, err := json.Marshal(bundle)
	if err != nil {
		return ProposalResult{}, err
	}

	record := entities.ProposalRecord{
		ID:        uuid.NewString(),
		ClienteID: strings.TrimSpace(p.ClienteID),
		Documento: documento,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		log.Printf("[proposal][usecase] record create failed cliente_id=%s err=%v", p.ClienteID, err)
		return ProposalResult{}, err
	}

	log.Printf("[proposal][usecase] generate success proposal_id=%s valor_total=%.2f",
		created.ID, bundle.Orcamento.ValorTotal.Reais())
	return ProposalResult{Record: created, Bundle: bundle}, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.ProposalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProposalRecord{}, ErrInvalidProposalID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProposalRecord{}, err
	}
	if r.ID == "" {
		return entities.ProposalRecord{}, ErrProposalNotFound
	}
	return r, nil
}

func (u *ProposalUseCase) ListByClienteID(ctx context.Context, clienteID string) ([]entities.ProposalRecord, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, ErrInvalidClienteID
	}
	return u.repo.ListByClienteID(ctx, clienteID)
}
