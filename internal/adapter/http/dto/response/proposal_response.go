package response

import (
	"time"

	"atelie_arq/internal/domain/engine"
	"atelie_arq/internal/domain/entities"
)

// Monetary fields in responses are reais (R$) with two decimals; the
// integer-centavo representation stays internal to the engine.

type CostLineResponse struct {
	DisciplinaID string  `json:"disciplina_id,omitempty"`
	Nome         string  `json:"nome"`
	Tipo         string  `json:"tipo"`
	Valor        float64 `json:"valor"`
}

type CostBreakdownResponse struct {
	Regiao    string  `json:"regiao"`
	Tipologia string  `json:"tipologia"`
	Padrao    string  `json:"padrao"`
	AreaTotal float64 `json:"area_total"`

	ValorBase              float64 `json:"valor_base"`
	MultiplicadorTipologia float64 `json:"multiplicador_tipologia"`
	MultiplicadorPadrao    float64 `json:"multiplicador_padrao"`

	Linhas []CostLineResponse `json:"linhas"`

	SubtotalDisciplinas  float64 `json:"subtotal_disciplinas"`
	SubtotalSobreposicao float64 `json:"subtotal_sobreposicao"`
	TaxaCoordenacao      float64 `json:"taxa_coordenacao"`
	AjusteUrgencia       float64 `json:"ajuste_urgencia"`
	Margem               float64 `json:"margem"`

	ValorTotal float64 `json:"valor_total"`
	ValorPorM2 float64 `json:"valor_por_m2"`
}

type ScheduleStageResponse struct {
	Nome        string   `json:"nome"`
	Percentual  float64  `json:"percentual"`
	Valor       float64  `json:"valor"`
	Disciplinas []string `json:"disciplinas"`
}

type AlertResponse struct {
	Mensagem   string `json:"mensagem"`
	Severidade string `json:"severidade"`
}

type SuggestionResponse struct {
	Mensagem  string `json:"mensagem"`
	Categoria string `json:"categoria"`
}

type ProposalResponse struct {
	ProposalID string    `json:"proposal_id"`
	ClienteID  string    `json:"cliente_id"`
	CreatedAt  time.Time `json:"created_at"`

	Titulo        string `json:"titulo"`
	Cliente       string `json:"cliente"`
	ResumoProjeto string `json:"resumo_projeto"`

	Orcamento  CostBreakdownResponse   `json:"orcamento"`
	Cronograma []ScheduleStageResponse `json:"cronograma"`

	Diferenciais        []string `json:"diferenciais"`
	CondicoesComerciais []string `json:"condicoes_comerciais"`
	ValidadeDias        int      `json:"validade_dias"`

	Alertas   []AlertResponse      `json:"alertas"`
	Sugestoes []SuggestionResponse `json:"sugestoes"`
}

// FromBundle flattens a derivation run plus its stored record into the
// intake-facing response.
func FromBundle(record entities.ProposalRecord, b engine.Bundle) ProposalResponse {
	return ProposalResponse{
		ProposalID:          record.ID,
		ClienteID:           record.ClienteID,
		CreatedAt:           record.CreatedAt,
		Titulo:              b.Proposta.Titulo,
		Cliente:             b.Proposta.Cliente,
		ResumoProjeto:       b.Proposta.ResumoProjeto,
		Orcamento:           fromBreakdown(b.Orcamento),
		Cronograma:          fromCronograma(b.Cronograma),
		Diferenciais:        b.Proposta.Diferenciais,
		CondicoesComerciais: b.Proposta.CondicoesComerciais,
		ValidadeDias:        b.Proposta.ValidadeDias,
		Alertas:             fromAlertas(b.Relatorio.Alertas),
		Sugestoes:           fromSugestoes(b.Relatorio.Sugestoes),
	}
}

func fromBreakdown(b entities.CostBreakdown) CostBreakdownResponse {
	linhas := make([]CostLineResponse, len(b.Linhas))
	for i, l := range b.Linhas {
		linhas[i] = CostLineResponse{
			DisciplinaID: l.DisciplinaID,
			Nome:         l.Nome,
			Tipo:         string(l.Tipo),
			Valor:        l.Valor.Reais(),
		}
	}
	return CostBreakdownResponse{
		Regiao:                 b.Regiao,
		Tipologia:              string(b.Tipologia),
		Padrao:                 string(b.Padrao),
		AreaTotal:              b.AreaTotal,
		ValorBase:              b.ValorBase.Reais(),
		MultiplicadorTipologia: b.MultiplicadorTipologia,
		MultiplicadorPadrao:    b.MultiplicadorPadrao,
		Linhas:                 linhas,
		SubtotalDisciplinas:    b.SubtotalDisciplinas.Reais(),
		SubtotalSobreposicao:   b.SubtotalSobreposicao.Reais(),
		TaxaCoordenacao:        b.TaxaCoordenacao.Reais(),
		AjusteUrgencia:         b.AjusteUrgencia.Reais(),
		Margem:                 b.Margem.Reais(),
		ValorTotal:             b.ValorTotal.Reais(),
		ValorPorM2:             b.ValorPorM2.Reais(),
	}
}

func fromCronograma(estagios []entities.ScheduleStage) []ScheduleStageResponse {
	out := make([]ScheduleStageResponse, len(estagios))
	for i, s := range estagios {
		out[i] = ScheduleStageResponse{
			Nome:        s.Nome,
			Percentual:  s.Percentual,
			Valor:       s.Valor.Reais(),
			Disciplinas: s.Disciplinas,
		}
	}
	return out
}

func fromAlertas(alertas []entities.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alertas))
	for i, a := range alertas {
		out[i] = AlertResponse{Mensagem: a.Mensagem, Severidade: string(a.Severidade)}
	}
	return out
}

func fromSugestoes(sugestoes []entities.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, len(sugestoes))
	for i, s := range sugestoes {
		out[i] = SuggestionResponse{Mensagem: s.Mensagem, Categoria: string(s.Categoria)}
	}
	return out
}
