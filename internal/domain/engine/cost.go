package engine

import (
	"fmt"

	"atelie_arq/internal/domain/entities"
)

// ComputeCost derives the base cost composition from the project
// parameters and the catalog.
//
// Algorithm: regional R$/m² reference (region+typology) × area gives the
// base value; typology and padrão multipliers apply on top (both scalar, so
// order is irrelevant). Each selected priced discipline takes its fixed
// share-of-base weight. The urgency surcharge and the margin apply once, at
// the end, on the cost-plus total — never compounded into intermediate
// subtotals. The final total is then redistributed across the discipline
// lines by largest remainder so the breakdown invariant holds exactly;
// the urgency and margin amounts stay visible as informational lines.
func (e *Engine) ComputeCost(p entities.ProjectParameters) (entities.CostBreakdown, error) {
	if err := e.validarParametros(p); err != nil {
		return entities.CostBreakdown{}, err
	}

	custoUnitario, ok := e.cat.CustoReferencia(p.Regiao, p.Tipologia)
	if !ok {
		return entities.CostBreakdown{}, entities.NewConfigurationError(
			fmt.Sprintf("custos_referencia.%s.%s", p.Regiao, p.Tipologia),
			"custo de referencia regional ausente",
		)
	}

	multTipologia := e.cat.MultiplicadoresTipologia[p.Tipologia]
	multPadrao := e.cat.MultiplicadoresPadrao[p.Padrao]
	acrescimoUrgencia := e.cat.AcrescimosUrgencia[p.Urgencia]

	valorBase := arredondar(float64(custoUnitario) * p.AreaTotal * multTipologia * multPadrao)

	// Selected priced disciplines in catalog-declaration order.
	var selecionadas []entities.Disciplina
	for _, d := range e.cat.DisciplinasBase() {
		if p.DisciplinaSelecionada(d.ID) {
			selecionadas = append(selecionadas, d)
		}
	}
	if len(selecionadas) == 0 {
		return entities.CostBreakdown{}, entities.NewValidationError(
			"disciplinas_selecionadas", p.DisciplinasSelecionadas,
			"nenhuma disciplina base selecionada",
		)
	}

	pesos := make([]float64, len(selecionadas))
	custoPlusBruto := 0.0
	for i, d := range selecionadas {
		pesos[i] = d.PesoBase
		custoPlusBruto += float64(valorBase) * d.PesoBase
	}

	custoPlus := arredondar(custoPlusBruto)
	comUrgencia := aplicarPercentual(custoPlus, acrescimoUrgencia)
	valorTotal := aplicarPercentual(comUrgencia, p.MargemPercentual)

	valores := distribuir(valorTotal, pesos)
	linhas := make([]entities.CostLine, len(selecionadas))
	for i, d := range selecionadas {
		linhas[i] = entities.CostLine{
			DisciplinaID: d.ID,
			Nome:         d.Nome,
			Tipo:         entities.CostLineDisciplina,
			Valor:        valores[i],
		}
	}

	return entities.CostBreakdown{
		Regiao:                 p.Regiao,
		Tipologia:              p.Tipologia,
		Padrao:                 p.Padrao,
		AreaTotal:              p.AreaTotal,
		ValorBase:              valorBase,
		MultiplicadorTipologia: multTipologia,
		MultiplicadorPadrao:    multPadrao,
		Linhas:                 linhas,
		SubtotalDisciplinas:    valorTotal,
		AjusteUrgencia:         comUrgencia - custoPlus,
		Margem:                 valorTotal - comUrgencia,
		ValorTotal:             valorTotal,
		ValorPorM2:             arredondar(float64(valorTotal) / p.AreaTotal),
	}, nil
}

func (e *Engine) validarParametros(p entities.ProjectParameters) error {
	if p.AreaTotal <= 0 {
		return entities.NewValidationError("area_total", p.AreaTotal, "area deve ser positiva")
	}
	if len(p.DisciplinasSelecionadas) == 0 {
		return entities.NewValidationError("disciplinas_selecionadas", nil, "nenhuma disciplina selecionada")
	}
	for _, id := range p.DisciplinasSelecionadas {
		if _, ok := e.cat.DisciplinaPorID(id); !ok {
			return entities.NewValidationError("disciplinas_selecionadas", id, "disciplina desconhecida no catalogo")
		}
	}
	if _, ok := e.cat.MultiplicadoresTipologia[p.Tipologia]; !ok {
		return entities.NewValidationError("tipologia", p.Tipologia, "tipologia desconhecida")
	}
	if _, ok := e.cat.MultiplicadoresPadrao[p.Padrao]; !ok {
		return entities.NewValidationError("padrao", p.Padrao, "padrao construtivo desconhecido")
	}
	if _, ok := e.cat.AcrescimosUrgencia[p.Urgencia]; !ok {
		return entities.NewValidationError("urgencia", p.Urgencia, "nivel de urgencia desconhecido")
	}
	if p.MargemPercentual < 0 || p.MargemPercentual > 100 {
		return entities.NewValidationError("margem_percentual", p.MargemPercentual, "margem fora do intervalo [0,100]")
	}
	return nil
}
