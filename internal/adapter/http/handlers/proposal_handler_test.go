package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atelie_arq/internal/adapter/http/handlers/mocks"
	"atelie_arq/internal/domain/engine"
	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const proposalBody = `{
	"cliente_id": "cli-1",
	"cliente_nome": "Família Almeida",
	"nome_projeto": "Casa Jardim Paulista",
	"area_total": 110,
	"tipologia": "residencial",
	"padrao": "medio",
	"regiao": "sudeste",
	"disciplinas": ["arquitetura"]
}`

func proposalResultFixture() usecase.ProposalResult {
	return usecase.ProposalResult{
		Record: entities.ProposalRecord{ID: "prop-1", ClienteID: "cli-1", CreatedAt: time.Now().UTC()},
		Bundle: engine.Bundle{
			Orcamento: entities.CostBreakdown{ValorTotal: 594000, ValorPorM2: 5400},
			Proposta:  entities.Proposal{Titulo: "Proposta Comercial — Casa Jardim Paulista", ValidadeDias: 15},
		},
	}
}

func TestProposalHandler_GenerateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.GenerateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.GenerateProposal)

		body := strings.Replace(proposalBody, `"area_total": 110`, `"area_total": -5`, 1)
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), gomock.Any()).Return(
			usecase.ProposalResult{}, entities.NewValidationError("regiao", "marte", "regiao desconhecida"))

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(proposalBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("code = %s, want VALIDATION_ERROR", body["code"])
		}
	})

	t.Run("configuration error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), gomock.Any()).Return(
			usecase.ProposalResult{}, entities.NewConfigurationError("custos_referencia.sudeste", "ausente"))

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(proposalBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProjectParameters) (usecase.ProposalResult, error) {
				if p.ClienteID != "cli-1" || p.AreaTotal != 110 || p.Urgencia != entities.UrgenciaNormal {
					t.Fatalf("unexpected parameters: %+v", p)
				}
				return proposalResultFixture(), nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(proposalBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["proposal_id"] != "prop-1" {
			t.Fatalf("proposal_id = %v, want prop-1", body["proposal_id"])
		}
		orcamento, ok := body["orcamento"].(map[string]any)
		if !ok || orcamento["valor_total"] != 5940.0 {
			t.Fatalf("valor_total = %v, want 5940.00 reais", orcamento["valor_total"])
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		uc.EXPECT().GetByID(gomock.Any(), "prop-x").Return(entities.ProposalRecord{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(
			entities.ProposalRecord{ID: "prop-1", ClienteID: "cli-1", Documento: json.RawMessage(`{"ok":true}`)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["proposal_id"] != "prop-1" {
			t.Fatalf("proposal_id = %v", body["proposal_id"])
		}
	})
}

func TestProposalHandler_ListProposalsByCliente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:cliente_id/proposals", h.ListProposalsByCliente)

		uc.EXPECT().ListByClienteID(gomock.Any(), "cli-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/cli-1/proposals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:cliente_id/proposals", h.ListProposalsByCliente)

		uc.EXPECT().ListByClienteID(gomock.Any(), "cli-1").Return([]entities.ProposalRecord{
			{ID: "prop-1", ClienteID: "cli-1"},
			{ID: "prop-2", ClienteID: "cli-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/cli-1/proposals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 records, got %d", len(body))
		}
	})
}
