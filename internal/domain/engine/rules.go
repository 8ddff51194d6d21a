package engine

import (
	"fmt"
	"log"

	"atelie_arq/internal/domain/entities"
)

// regra is one predicate→message heuristic. Rules are independent and
// side-effect-free; declaration order is the output order.
type regra struct {
	id     string
	avaliar func(e *Engine, p entities.ProjectParameters, b entities.CostBreakdown) (*entities.Alert, *entities.Suggestion)
}

var regras = []regra{
	{
		id: "area-grande-sem-estrutural",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.AreaTotal > 500 && !p.DisciplinaSelecionada("estrutural") {
				return &entities.Alert{
					Mensagem:   "Área acima de 500m² sem projeto estrutural: análise de fundações fortemente recomendada.",
					Severidade: entities.AlertaCritico,
				}, nil
			}
			return nil, nil
		},
	},
	{
		id: "margem-insuficiente-urgencia",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.Urgencia == entities.UrgenciaUrgente && p.MargemPercentual < 10 {
				return &entities.Alert{
					Mensagem:   "Margem pode ser insuficiente para entrega em regime de urgência: revise antes de enviar a proposta.",
					Severidade: entities.AlertaAtencao,
				}, nil
			}
			return nil, nil
		},
	},
	{
		id: "industrial-sem-instalacoes",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.Tipologia == entities.TipologiaIndustrial && !p.DisciplinaSelecionada("instalacoes") {
				return &entities.Alert{
					Mensagem:   "Tipologia industrial sem projeto de instalações: dimensionamento de cargas tende a ser crítico.",
					Severidade: entities.AlertaAtencao,
				}, nil
			}
			return nil, nil
		},
	},
	{
		id: "valor-m2-abaixo-referencia",
		avaliar: func(e *Engine, p entities.ProjectParameters, b entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			referencia, ok := e.cat.CustoReferencia(p.Regiao, p.Tipologia)
			if ok && b.ValorPorM2 < referencia {
				return &entities.Alert{
					Mensagem: fmt.Sprintf(
						"Valor por m² (R$ %.2f) abaixo da referência regional (R$ %.2f): escopo reduzido pode comprometer a rentabilidade.",
						b.ValorPorM2.Reais(), referencia.Reais(),
					),
					Severidade: entities.AlertaAtencao,
				}, nil
			}
			return nil, nil
		},
	},
	{
		id: "prazo-inferior-ao-estimado",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.PrazoDesejadoDias <= 0 {
				return nil, nil
			}
			estimado := e.duracaoEstimadaDias(p)
			if p.PrazoDesejadoDias < estimado {
				return &entities.Alert{
					Mensagem: fmt.Sprintf(
						"Prazo desejado (%d dias) inferior à duração estimada das fases (%d dias): negocie escopo ou prazo.",
						p.PrazoDesejadoDias, estimado,
					),
					Severidade: entities.AlertaAtencao,
				}, nil
			}
			return nil, nil
		},
	},
	{
		id: "padrao-alto-sem-interiores",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if (p.Padrao == entities.PadraoAlto || p.Padrao == entities.PadraoPremium) && !p.DisciplinaSelecionada("interiores") {
				return nil, &entities.Suggestion{
					Mensagem:  "Padrão construtivo alto sem projeto de interiores: oferecer interiores tende a elevar o ticket da proposta.",
					Categoria: entities.SugestaoComercial,
				}
			}
			return nil, nil
		},
	},
	{
		id: "area-grande-coordenacao-bim",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.AreaTotal > 1000 {
				return nil, &entities.Suggestion{
					Mensagem:  "Área acima de 1.000m²: coordenação em BIM reduz retrabalho de compatibilização.",
					Categoria: entities.SugestaoTecnica,
				}
			}
			return nil, nil
		},
	},
	{
		id: "margem-alta-competitividade",
		avaliar: func(e *Engine, p entities.ProjectParameters, _ entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			if p.MargemPercentual > 40 {
				return nil, &entities.Suggestion{
					Mensagem:  "Margem acima de 40%: avalie a competitividade do valor final frente ao mercado regional.",
					Categoria: entities.SugestaoComercial,
				}
			}
			return nil, nil
		},
	},
}

// Evaluate runs the fixed rule list against the final breakdown and the
// input parameters. A rule that panics is logged and skipped — a missing
// alert is acceptable, a crashed proposal is not.
func (e *Engine) Evaluate(p entities.ProjectParameters, b entities.CostBreakdown) entities.RuleReport {
	report := entities.RuleReport{
		Alertas:   []entities.Alert{},
		Sugestoes: []entities.Suggestion{},
	}
	for _, r := range regras {
		alerta, sugestao := avaliarComRecuperacao(e, r, p, b)
		if alerta != nil {
			report.Alertas = append(report.Alertas, *alerta)
		}
		if sugestao != nil {
			report.Sugestoes = append(report.Sugestoes, *sugestao)
		}
	}
	return report
}

func avaliarComRecuperacao(e *Engine, r regra, p entities.ProjectParameters, b entities.CostBreakdown) (alerta *entities.Alert, sugestao *entities.Suggestion) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[engine][rules] regra %s falhou e foi ignorada: %v", r.id, rec)
			alerta, sugestao = nil, nil
		}
	}()
	return r.avaliar(e, p, b)
}

// duracaoEstimadaDias computes the longest dependency chain (in days) over
// the selected disciplines' phases. Dependencies on unselected disciplines
// contribute no duration.
func (e *Engine) duracaoEstimadaDias(p entities.ProjectParameters) int {
	fases := make(map[string]entities.Fase)
	for _, d := range e.cat.Disciplinas {
		if !p.DisciplinaSelecionada(d.ID) {
			continue
		}
		for _, f := range d.Fases {
			fases[f.ID] = f
		}
	}

	memo := make(map[string]int, len(fases))
	var caminho func(id string) int
	caminho = func(id string) int {
		if v, ok := memo[id]; ok {
			return v
		}
		f, ok := fases[id]
		if !ok {
			return 0
		}
		maior := 0
		for _, dep := range f.Dependencias {
			if d := caminho(dep); d > maior {
				maior = d
			}
		}
		total := maior + f.DuracaoDias
		memo[id] = total
		return total
	}

	estimado := 0
	for id := range fases {
		if d := caminho(id); d > estimado {
			estimado = d
		}
	}
	return estimado
}
