package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atelie_arq/internal/domain/catalog"
	"atelie_arq/internal/domain/engine"
	"atelie_arq/internal/domain/entities"
	mock_interfaces "atelie_arq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testProposalEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.LoadDefault()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return engine.NewEngine(cat)
}

func validParameters() entities.ProjectParameters {
	return entities.ProjectParameters{
		ClienteID:               "cli-1",
		ClienteNome:             "Família Almeida",
		NomeProjeto:             "Casa Jardim Paulista",
		AreaTotal:               110,
		Tipologia:               entities.TipologiaResidencial,
		Padrao:                  entities.PadraoMedio,
		Regiao:                  "sudeste",
		DisciplinasSelecionadas: []string{"arquitetura"},
		Urgencia:                entities.UrgenciaNormal,
	}
}

func TestProposalUseCase_GenerateProposal(t *testing.T) {
	t.Run("derivation error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(testProposalEngine(t), repo)

		p := validParameters()
		p.AreaTotal = -1

		_, err := uc.GenerateProposal(context.Background(), p)
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(testProposalEngine(t), repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProposalRecord{})).Return(entities.ProposalRecord{}, errors.New("db"))

		_, err := uc.GenerateProposal(context.Background(), validParameters())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success persists snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(testProposalEngine(t), repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProposalRecord{})).DoAndReturn(
			func(_ context.Context, r entities.ProposalRecord) (entities.ProposalRecord, error) {
				if r.ID == "" || r.ClienteID != "cli-1" || r.CreatedAt.IsZero() {
					t.Fatalf("unexpected record: %+v", r)
				}
				var bundle engine.Bundle
				if err := json.Unmarshal(r.Documento, &bundle); err != nil {
					t.Fatalf("documento is not a bundle: %v", err)
				}
				if bundle.Orcamento.ValorTotal != 594000 {
					t.Fatalf("documento valor total = %d, want 594000", bundle.Orcamento.ValorTotal)
				}
				return r, nil
			},
		)

		res, err := uc.GenerateProposal(context.Background(), validParameters())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.ID == "" {
			t.Fatalf("expected generated id")
		}
		if res.Bundle.Orcamento.ValorTotal != 594000 {
			t.Fatalf("bundle valor total = %d, want 594000", res.Bundle.Orcamento.ValorTotal)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(nil, repo)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.ProposalRecord{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "prop-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(nil, repo)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.ProposalRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(nil, repo)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.ProposalRecord{ID: "prop-1"}, nil)

		r, err := uc.GetByID(context.Background(), " prop-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID != "prop-1" {
			t.Fatalf("unexpected record: %+v", r)
		}
	})
}

func TestProposalUseCase_ListByClienteID(t *testing.T) {
	t.Run("invalid cliente id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, err := uc.ListByClienteID(context.Background(), "")
		if !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRecordRepository(ctrl)
		uc := NewProposalUseCase(nil, repo)
		repo.EXPECT().ListByClienteID(gomock.Any(), "cli-1").Return([]entities.ProposalRecord{{ID: "prop-1"}}, nil)

		records, err := uc.ListByClienteID(context.Background(), " cli-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 || records[0].ID != "prop-1" {
			t.Fatalf("unexpected records: %+v", records)
		}
	})
}
