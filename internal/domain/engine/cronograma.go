package engine

import (
	"atelie_arq/internal/domain/entities"
)

// GenerateSchedule maps the finalized breakdown onto the catalog's
// commercial milestones.
//
// The entrada milestone (the marco declared without phases) takes the
// catalog's entrada percentage of the grand total. The remainder is
// distributed across the phase milestones proportionally to each phase's
// percentual_projeto-weighted share of its discipline's line value; the
// coordination fee, having no phases of its own, dilutes proportionally.
// Largest-remainder reconciliation guarantees the amounts sum to the grand
// total and the percentages to 100.00. Milestones with no selected work are
// omitted. Disciplines inside a milestone keep catalog-declaration order.
func (e *Engine) GenerateSchedule(b entities.CostBreakdown) ([]entities.ScheduleStage, error) {
	marcos := e.cat.Cronograma.Marcos

	marcoPorCodigo := make(map[entities.FaseCodigo]int, 8)
	entradaIdx := -1
	for i, m := range marcos {
		if len(m.Fases) == 0 && entradaIdx == -1 {
			entradaIdx = i
		}
		for _, codigo := range m.Fases {
			marcoPorCodigo[codigo] = i
		}
	}
	if e.cat.Cronograma.EntradaPercentual > 0 && entradaIdx == -1 {
		return nil, entities.NewConfigurationError("cronograma.marcos", "entrada_percentual definido sem marco de entrada")
	}

	pesos := make([]float64, len(marcos))
	disciplinasPorMarco := make([][]string, len(marcos))
	for _, linha := range b.Linhas {
		if linha.DisciplinaID == "" {
			continue
		}
		d, ok := e.cat.DisciplinaPorID(linha.DisciplinaID)
		if !ok {
			continue
		}
		participa := make(map[int]bool, len(d.Fases))
		for _, f := range d.Fases {
			idx := marcoPorCodigo[f.Codigo]
			pesos[idx] += float64(linha.Valor) * f.PercentualProjeto / 100
			participa[idx] = true
		}
		for i := range marcos {
			if participa[i] {
				disciplinasPorMarco[i] = append(disciplinasPorMarco[i], d.ID)
			}
		}
	}

	entradaValor := arredondar(float64(b.ValorTotal) * e.cat.Cronograma.EntradaPercentual / 100)
	valores := distribuir(b.ValorTotal-entradaValor, pesos)
	if entradaIdx >= 0 {
		valores[entradaIdx] = entradaValor
	}

	// Percentages as integer basis points of the grand total, reconciled to
	// exactly 100.00 across the emitted stages.
	pesosPercentuais := make([]float64, len(marcos))
	for i, v := range valores {
		pesosPercentuais[i] = float64(v)
	}
	bps := distribuir(10000, pesosPercentuais)

	estagios := make([]entities.ScheduleStage, 0, len(marcos))
	for i, m := range marcos {
		if valores[i] == 0 {
			continue
		}
		disciplinas := disciplinasPorMarco[i]
		if disciplinas == nil {
			disciplinas = []string{}
		}
		estagios = append(estagios, entities.ScheduleStage{
			Nome:        m.Nome,
			Percentual:  float64(bps[i]) / 100,
			Valor:       valores[i],
			Disciplinas: disciplinas,
		})
	}
	return estagios, nil
}
