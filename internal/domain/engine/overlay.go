package engine

import (
	"atelie_arq/internal/domain/entities"
)

// ApplyOverlay adds the selected overlay disciplines (interiores, decoração,
// paisagismo) as percentage-of-architecture line items plus a coordination
// fee over all subtotals.
//
// The grand total is recomputed from raw (unrounded) values and the rounding
// remainder lands on the coordination-fee line, re-establishing the
// breakdown invariant exactly. With no overlay discipline selected the
// breakdown passes through unchanged.
func (e *Engine) ApplyOverlay(base entities.CostBreakdown, p entities.ProjectParameters) (entities.CostBreakdown, error) {
	// Overlay selections in catalog-declaration order.
	var sobreposicoes []entities.Disciplina
	for _, d := range e.cat.Disciplinas {
		if e.cat.IsSobreposicao(d.ID) && p.DisciplinaSelecionada(d.ID) {
			sobreposicoes = append(sobreposicoes, d)
		}
	}
	if len(sobreposicoes) == 0 {
		return base, nil
	}

	arq, ok := base.LinhaPorDisciplina(DisciplinaArquitetura)
	if !ok {
		return entities.CostBreakdown{}, entities.NewValidationError(
			"disciplinas_selecionadas", p.DisciplinasSelecionadas,
			"disciplinas de sobreposicao exigem arquitetura selecionada",
		)
	}

	out := base
	out.Linhas = make([]entities.CostLine, len(base.Linhas), len(base.Linhas)+len(sobreposicoes)+1)
	copy(out.Linhas, base.Linhas)

	somaSobreposicaoBruta := 0.0
	var somaSobreposicao entities.Centavos
	for _, d := range sobreposicoes {
		pct := e.cat.Sobreposicoes[d.ID]
		bruto := float64(arq.Valor) * pct / 100
		valor := arredondar(bruto)
		somaSobreposicaoBruta += bruto
		somaSobreposicao += valor
		out.Linhas = append(out.Linhas, entities.CostLine{
			DisciplinaID: d.ID,
			Nome:         d.Nome,
			Tipo:         entities.CostLineSobreposicao,
			Valor:        valor,
		})
	}

	subtotalBruto := float64(base.SubtotalDisciplinas) + somaSobreposicaoBruta
	coordenacaoBruta := subtotalBruto * e.cat.TaxaCoordenacaoPercentual / 100
	valorTotal := arredondar(subtotalBruto + coordenacaoBruta)

	// The coordination line absorbs whatever centavos the individual
	// roundings left over, so the lines reconcile to the total exactly.
	coordenacao := valorTotal - base.SubtotalDisciplinas - somaSobreposicao
	out.Linhas = append(out.Linhas, entities.CostLine{
		Nome:  "Coordenação multidisciplinar",
		Tipo:  entities.CostLineCoordenacao,
		Valor: coordenacao,
	})

	out.SubtotalSobreposicao = somaSobreposicao
	out.TaxaCoordenacao = coordenacao
	out.ValorTotal = valorTotal
	out.ValorPorM2 = arredondar(float64(valorTotal) / base.AreaTotal)
	return out, nil
}
