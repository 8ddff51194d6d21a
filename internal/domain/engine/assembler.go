package engine

import (
	"fmt"
	"strings"

	"atelie_arq/internal/domain/entities"
)

// Assemble combines the pipeline results into the external-facing proposal
// document. Pure aggregation: no new computation, no clock, so identical
// inputs yield byte-identical output. The validity window and the
// commercial texts come from the catalog's business policy.
func (e *Engine) Assemble(
	p entities.ProjectParameters,
	b entities.CostBreakdown,
	cronograma []entities.ScheduleStage,
	relatorio entities.RuleReport,
) entities.Proposal {
	nomes := make([]string, 0, len(p.DisciplinasSelecionadas))
	for _, d := range e.cat.Disciplinas {
		if p.DisciplinaSelecionada(d.ID) {
			nomes = append(nomes, d.Nome)
		}
	}

	resumo := fmt.Sprintf(
		"Projeto %s de %.0fm², padrão %s, região %s. Disciplinas contratadas: %s.",
		p.Tipologia, p.AreaTotal, p.Padrao, p.Regiao, strings.Join(nomes, ", "),
	)

	return entities.Proposal{
		Titulo:              fmt.Sprintf("Proposta Comercial — %s", p.NomeProjeto),
		Cliente:             p.ClienteNome,
		ResumoProjeto:       resumo,
		ValorTotal:          b.ValorTotal,
		ValorPorM2:          b.ValorPorM2,
		Cronograma:          cronograma,
		Diferenciais:        e.cat.Politica.Diferenciais,
		CondicoesComerciais: e.cat.Politica.CondicoesComerciais,
		ValidadeDias:        e.cat.Politica.ValidadeDias,
		Alertas:             relatorio.Alertas,
		Sugestoes:           relatorio.Sugestoes,
	}
}
